package csvrows

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voidshard/ledjer/pkg/domain"
)

func TestParse(t *testing.T) {
	rows, err := Parse(strings.NewReader("\ufeffitem, Tier ,qty\r\nGem,rare,5\r\n\r\n\"Iron, Sword\",\"t1\"\r\n"))

	assert.Nil(t, err)
	assert.Equal(t, []domain.ImportRow{
		domain.Row("item", "Gem", "Tier", "rare", "qty", "5"),
		domain.Row("item", "Iron, Sword", "Tier", "t1", "qty", ""),
	}, rows)
}

func TestParseKeepsHeaderOrder(t *testing.T) {
	rows, err := Parse(strings.NewReader("sell,item,id\n60,Sword,\n"))

	assert.Nil(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "sell", rows[0][0].Header)
	assert.Equal(t, "item", rows[0][1].Header)
	assert.Equal(t, "id", rows[0][2].Header)
}

func TestParseLongRow(t *testing.T) {
	rows, err := Parse(strings.NewReader("a,b\n1,2,3\n"))

	assert.Nil(t, err)
	assert.Equal(t, []domain.ImportRow{domain.Row("a", "1", "b", "2")}, rows)
}

func TestParseEmpty(t *testing.T) {
	rows, err := Parse(strings.NewReader(""))

	assert.Nil(t, err)
	assert.Len(t, rows, 0)
}

func TestParseHeaderOnly(t *testing.T) {
	rows, err := Parse(strings.NewReader("item,qty\n"))

	assert.Nil(t, err)
	assert.Len(t, rows, 0)
}
