package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/model"
)

func sims(numbers ...string) []*model.Sim {
	out := make([]*model.Sim, len(numbers))
	for i, n := range numbers {
		out[i] = &model.Sim{ID: n, PhoneNumber: n, Status: model.SimStatusAvailable}
	}
	return out
}

func numbers(in []*model.Sim) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = s.PhoneNumber
	}
	return out
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	all := sims("0912.345.678", "0918.888.999")
	assert.Equal(t, all, Filter(all, ""))
	assert.Equal(t, all, Filter(all, "..."))
}

func TestFilterIgnoresSeparators(t *testing.T) {
	all := sims("0912.345.678", "0918.888.999", "0919.39.79.39", "0888.666.888")

	tests := []struct {
		query string
		want  []string
	}{
		{"912", []string{"0912.345.678"}},
		{"2345", []string{"0912.345.678"}},
		{"0912.345", []string{"0912.345.678"}},
		{"091.2345", []string{"0912.345.678"}},
		{"888", []string{"0918.888.999", "0888.666.888"}},
		{"3979", []string{"0919.39.79.39"}},
		{"091", []string{"0912.345.678", "0918.888.999", "0919.39.79.39"}},
		{"6789", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, numbers(Filter(all, tt.query)))
		})
	}
}

func TestFilterIsLiteralOnOtherCharacters(t *testing.T) {
	all := sims("0912.345.678")
	assert.Empty(t, Filter(all, "0912 345"))
	assert.Empty(t, Filter(all, "091*"))
	assert.Empty(t, Filter(all, "0912-345"))
}

func TestFilterIsExactlyTheMatchingSubset(t *testing.T) {
	all := sims("0912.345.678", "0945.678.910", "0911.22.33.44", "0833.555.777")
	for _, q := range []string{"", "0", "9", "45", "678", "5.5", "x", "0911223344", "09112233445"} {
		got := Filter(all, q)
		var want []string
		for _, s := range all {
			if Matches(s.PhoneNumber, q) {
				want = append(want, s.PhoneNumber)
			}
		}
		assert.ElementsMatch(t, want, numbers(got), "query %q", q)
	}
}
