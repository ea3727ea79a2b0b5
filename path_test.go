package urlkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsPath_internal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dotdot pops twice", "/a/b/../../c", "/c"},
		{"collapse and no dotdot", "/////foo", "/foo"},
		{"trailing dot is directory", "/a/b/.", "/a/b/"},
		{"dotdot with nothing to pop is still consumed", "../../foo", "foo"},
		{"bare root", "/", "/"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, absPath(tt.in))
		})
	}
}

func TestMergePaths(t *testing.T) {
	assert.Equal(t, "/foo", mergePaths(true, "", "foo"))
	assert.Equal(t, "/a/b/foo", mergePaths(true, "/a/b/c", "foo"))
	assert.Equal(t, "foo", mergePaths(false, "noslash", "foo"))
}
