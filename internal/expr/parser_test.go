package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Assignment
	}{
		{
			name:  "single assignment",
			input: "A = B + 1",
			want:  []Assignment{{Target: "A", RHS: "B + 1"}},
		},
		{
			name:  "semicolon separated",
			input: "A = B + 1; B = 2",
			want:  []Assignment{{Target: "A", RHS: "B + 1"}, {Target: "B", RHS: "2"}},
		},
		{
			name:  "newline separated",
			input: "A = 1\nB = 2",
			want:  []Assignment{{Target: "A", RHS: "1"}, {Target: "B", RHS: "2"}},
		},
		{
			name:  "separator runs collapse",
			input: "A = 1;;\n\n;B = 2",
			want:  []Assignment{{Target: "A", RHS: "1"}, {Target: "B", RHS: "2"}},
		},
		{
			name:  "split at first equals only",
			input: "EQ = A = B",
			want:  []Assignment{{Target: "EQ", RHS: "A = B"}},
		},
		{
			name:  "empty right side allowed",
			input: "A =",
			want:  []Assignment{{Target: "A", RHS: ""}},
		},
		{
			name:  "duplicate targets stay distinct",
			input: "X = 1; X = 2",
			want:  []Assignment{{Target: "X", RHS: "1"}, {Target: "X", RHS: "2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAssignments(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAssignments_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"no equals", "A B", ErrMissingEquals},
		{"no equals in later statement", "A = 1; B", ErrMissingEquals},
		{"empty target", " = B + 1", ErrEmptyTarget},
		{"empty input", "", ErrNoAssignments},
		{"separators only", " ;; \n ; ", ErrNoAssignments},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAssignments(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
