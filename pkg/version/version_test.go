package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonaspleyer/crate2bib/pkg/errors"
)

func strs(vs ...string) []String {
	out := make([]String, len(vs))
	for i, v := range vs {
		out[i] = String(v)
	}
	return out
}

func TestSelect(t *testing.T) {
	candidates := strs("0.1.0", "1.0.217", "0.1.5", "not-a-version", "1.0.219", "0.2.0-rc.1", "0.1.12", "1.0.0-alpha")

	tests := []struct {
		constraint string
		want       string
	}{
		{"", "1.0.219"},
		{"1.0.217", "1.0.217"},
		{"=1.0.217", "1.0.217"},
		{"0.1", "0.1.12"},
		{"1", "1.0.219"},
		{"1.0", "1.0.219"},
		{"^0.1.3", "0.1.12"},
		{"~1.0.0", "1.0.219"},
		{">=0.1, <1", "0.1.12"},
		{">=0.1,<1", "0.1.12"},
		{"<0.1.5", "0.1.0"},
		{"*", "1.0.219"},
		{"0.2.0-rc.1", "0.2.0-rc.1"},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			got, err := Select("demo", tt.constraint, candidates)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got.Candidate))
			assert.Equal(t, tt.want, got.Version.String())
		})
	}
}

func TestSelectEmptyConstraintIncludesPrerelease(t *testing.T) {
	got, err := Select("demo", "", strs("0.9.0", "1.0.0-beta.2"))
	require.NoError(t, err)
	assert.Equal(t, "1.0.0-beta.2", string(got.Candidate))
}

func TestSelectNotFound(t *testing.T) {
	_, err := Select("serde", "2.0", strs("1.0.0", "1.5.3"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeVersionNotFound))
	assert.Contains(t, err.Error(), "serde")
	assert.Contains(t, err.Error(), "2.0")

	_, err = Select("serde", "", strs("garbage", "v1"))
	assert.True(t, errors.Is(err, errors.ErrCodeVersionNotFound))

	_, err = Select[String]("serde", "", nil)
	assert.True(t, errors.Is(err, errors.ErrCodeVersionNotFound))
}

func TestSelectInvalidConstraint(t *testing.T) {
	_, err := Select("serde", "latest", strs("1.0.0"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}

func TestSortSkipsInvalidAndIsStable(t *testing.T) {
	type tagged struct {
		String
		tag int
	}
	in := []tagged{{"1.0.0", 1}, {"bogus", 2}, {"2.0.0", 3}, {"1.0.0", 4}, {"1.0", 5}}

	got := Sort(in)
	require.Len(t, got, 3)
	assert.Equal(t, 3, got[0].Candidate.tag)
	assert.Equal(t, 1, got[1].Candidate.tag)
	assert.Equal(t, 4, got[2].Candidate.tag)
}

func TestSelectIsHighestMatching(t *testing.T) {
	candidates := strs("0.3.1", "1.9.9", "0.4.0", "1.2.0", "2.0.0", "0.3.0")
	got, err := Select("demo", ">=0.3,<2", candidates)
	require.NoError(t, err)

	for _, s := range Sort(candidates) {
		if s.Version.GreaterThan(got.Version) {
			c, _ := ParseConstraint(">=0.3,<2")
			assert.False(t, c.Check(s.Version), "higher match %s exists", s.Version)
		}
	}
	assert.Equal(t, "1.9.9", string(got.Candidate))
}
