package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"urgent", "grocery"}, splitTags(" urgent, grocery,,URGENT "))
	assert.Nil(t, splitTags(""))
}

func TestNewTags(t *testing.T) {
	tests := []struct {
		name    string
		titles  []string
		current []string
		want    []string
	}{
		{name: "only unseen titles", titles: []string{"a", "B"}, current: []string{"A", "c"}, want: []string{"B"}},
		{name: "nothing new", titles: []string{"a"}, current: []string{"a"}},
		{name: "new post", titles: []string{"x"}, want: []string{"x"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newTags(tt.titles, tt.current))
		})
	}
}
