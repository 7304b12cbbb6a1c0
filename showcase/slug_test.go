package showcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Anna Li", "anna-li"},
		{"Åsa Öberg", "asa-oberg"},
		{"Märta  von   Ähr", "marta-von-ahr"},
		{"  -Dash--Lover- ", "dash-lover"},
		{"Ren & Stimpy!", "ren-stimpy"},
		{"José", "jos"},
		{"Tab\tSeparated", "tab-separated"},
		{"Line\nBreak", "line-break"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.name))
		})
	}
}

func TestSlugSequence(t *testing.T) {
	t.Run("repeated names get numeric suffixes in order", func(t *testing.T) {
		seq := NewSlugSequence()
		var got []string
		for _, name := range []string{"Anna Li", "Anna Li", "Anna Li"} {
			got = append(got, seq.Next(name))
		}
		assert.Equal(t, []string{"anna-li", "anna-li-2", "anna-li-3"}, got)
	})

	t.Run("counter is shared by names with the same base slug", func(t *testing.T) {
		seq := NewSlugSequence()
		assert.Equal(t, "anna-li", seq.Next("Anna Li"))
		assert.Equal(t, "bo", seq.Next("Bo"))
		assert.Equal(t, "anna-li-2", seq.Next("anna li"))
		assert.Equal(t, "anna-li-3", seq.Next("Änna Li"))
	})

	t.Run("unsluggable names use a fallback", func(t *testing.T) {
		seq := NewSlugSequence()
		assert.Equal(t, "participant", seq.Next("???"))
		assert.Equal(t, "participant-2", seq.Next("!!!"))
	})
}
