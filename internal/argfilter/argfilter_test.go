package argfilter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "mixed flags",
			args: []string{"--all", "-am", "stripped message", "-c", "123", "--fixup=321", "--message=test", "test"},
			want: []string{"--all", "-a", "-c", "123", "--fixup=321", "test"},
		},
		{
			name: "bare short flag skips its value",
			args: []string{"-m", "hello", "--no-verify"},
			want: []string{"--no-verify"},
		},
		{
			name: "inline short value",
			args: []string{"-mhello", "--no-verify"},
			want: []string{"--no-verify"},
		},
		{
			name: "bundled short options keep their order",
			args: []string{"-sam", "msg", "-v"},
			want: []string{"-sa", "-v"},
		},
		{
			name: "bundled options with inline value",
			args: []string{"-amfix it", "next"},
			want: []string{"-a", "next"},
		},
		{
			name: "bare long flag skips its value",
			args: []string{"--message", "hello", "--signoff"},
			want: []string{"--signoff"},
		},
		{
			name: "long flag with value",
			args: []string{"--message=hello world", "--signoff"},
			want: []string{"--signoff"},
		},
		{
			name: "long flag with empty value",
			args: []string{"--message=", "--signoff"},
			want: []string{"--signoff"},
		},
		{
			name: "trailing bare flag",
			args: []string{"--all", "-m"},
			want: []string{"--all"},
		},
		{
			name: "skipped token is not inspected",
			args: []string{"-m", "-m", "kept"},
			want: []string{"kept"},
		},
		{
			name: "similar long flags pass through",
			args: []string{"--messages", "--message-file", "--amend"},
			want: []string{"--messages", "--message-file", "--amend"},
		},
		{
			name: "no message flags",
			args: []string{"--all", "-v", "--fixup=abc"},
			want: []string{"--all", "-v", "--fixup=abc"},
		},
		{
			name: "empty",
			args: nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.args)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterIsStableOnFilteredOutput(t *testing.T) {
	inputs := [][]string{
		{"--all", "-am", "msg", "-c", "123", "--fixup=321", "--message=test", "test"},
		{"-sm", "msg", "--signoff", "--message", "x", "-v"},
		{"--allow-empty", "-n"},
	}

	for _, in := range inputs {
		once := Filter(in)
		twice := Filter(once)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("Filter(Filter(%q)) changed the output (-once +twice):\n%s", in, diff)
		}
	}
}

func TestFold(t *testing.T) {
	out, state := Fold([]string{"-a", "--message"})
	assert.Equal(t, []string{"-a"}, out)
	assert.Equal(t, SkipOne, state)

	out, state = Fold([]string{"--message", "value", "-v"})
	assert.Equal(t, []string{"-v"}, out)
	assert.Equal(t, Normal, state)
}

func TestStep(t *testing.T) {
	tests := []struct {
		name      string
		state     State
		arg       string
		wantState State
		wantEmit  []string
	}{
		{"skip resets", SkipOne, "-am", Normal, nil},
		{"bundle", Normal, "-am", SkipOne, []string{"-a"}},
		{"bundle inline", Normal, "-amtext", Normal, []string{"-a"}},
		{"bare short", Normal, "-m", SkipOne, nil},
		{"bare long", Normal, "--message", SkipOne, nil},
		{"long value", Normal, "--message=x", Normal, nil},
		{"other", Normal, "--all", Normal, []string{"--all"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, emit := Step(tt.state, tt.arg)
			assert.Equal(t, tt.wantState, state)
			assert.Equal(t, tt.wantEmit, emit)
		})
	}
}

func TestMarkers(t *testing.T) {
	assert.True(t, HasAmend([]string{"-a", "--amend"}))
	assert.False(t, HasAmend([]string{"-a", "--amend=no"}))

	assert.True(t, IsRetry([]string{"--retry", "-a"}))
	assert.False(t, IsRetry([]string{"-a", "--retry"}))
	assert.False(t, IsRetry(nil))

	assert.True(t, AllowsEmpty([]string{"-n", "--allow-empty"}))
	assert.False(t, AllowsEmpty([]string{"--allow-empty-message"}))

	assert.Equal(t, []string{"-a", "-v"}, Without([]string{"--retry", "-a", "--retry", "-v"}, "--retry"))
}
