package vec_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/teenjuna/vec"
	"github.com/teenjuna/vec/internal/testing/require"
)

func TestPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := vec.Prometheus(reg)

	// One config shared by two vectors: the collectors register once and
	// both vectors feed them.
	v1 := vec.New[int]().Instrument(c)
	for i := range 5 {
		v1.PushBack(i) // grows to 1, 2, 4, 8; relocates 0+1+2+4
	}

	v2 := vec.Of(1, 2, 3).Instrument(c)
	v2.Insert(1, 9) // full, grows to 6, relocates 3
	v2.Erase(0)

	expected := `# HELP vec_erases Number of elements erased from instrumented vectors
# TYPE vec_erases counter
vec_erases 1
# HELP vec_grows Number of buffer growths performed by instrumented vectors
# TYPE vec_grows counter
vec_grows 5
# HELP vec_inserts Number of elements inserted into instrumented vectors
# TYPE vec_inserts counter
vec_inserts 1
# HELP vec_pushes Number of elements appended to instrumented vectors
# TYPE vec_pushes counter
vec_pushes 5
# HELP vec_relocated_elements Number of elements relocated during buffer growths
# TYPE vec_relocated_elements counter
vec_relocated_elements 10
`

	err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"vec_pushes",
		"vec_inserts",
		"vec_erases",
		"vec_grows",
		"vec_relocated_elements",
	)
	require.NoError(t, err)
}

func TestPrometheusConfigFuncs(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := vec.Prometheus(reg, func(c *vec.PrometheusConfig) {
		c.Pushes.Name = "appends"
	})

	v := vec.New[int]().Instrument(c)
	v.PushBack(1)

	expected := `# HELP vec_appends Number of elements appended to instrumented vectors
# TYPE vec_appends counter
vec_appends 1
`

	err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "vec_appends")
	require.NoError(t, err)
}

func TestPrometheusNilRegisterer(t *testing.T) {
	c := vec.Prometheus(nil)
	v := vec.New[int]().Instrument(c)
	for i := range 10 {
		v.PushBack(i)
	}
	require.Equal(t, v.Size(), 10)
}

func TestInstrumentNilConfig(t *testing.T) {
	require.PanicWithError(t, "config can't be nil", func() {
		vec.New[int]().Instrument(nil)
	})
}
