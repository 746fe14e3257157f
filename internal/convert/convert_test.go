package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/svg2pptx/internal/dom"
	"github.com/ivlev/svg2pptx/internal/model"
	"github.com/ivlev/svg2pptx/internal/policy"
	"github.com/ivlev/svg2pptx/internal/pptx"
)

func parseDoc(t *testing.T, src string) *dom.Element {
	t.Helper()
	root, err := dom.ParseString(src)
	require.NoError(t, err)
	return root
}

func TestConvertNilRoot(t *testing.T) {
	result := Convert(nil, Options{})
	assert.True(t, result.Success)
	assert.Empty(t, result.XML)
	assert.NotEmpty(t, result.Warnings)
}

func TestConvertNoAnimations(t *testing.T) {
	root := parseDoc(t, `<svg><rect id="r"/></svg>`)
	result := Convert(root, Options{})
	assert.True(t, result.Success)
	assert.Empty(t, result.XML)
	assert.Contains(t, strings.Join(result.Warnings, "\n"), "no convertible animations")
}

func TestConvertFullPipeline(t *testing.T) {
	root := parseDoc(t, `<svg>
		<rect id="r1">
			<animate attributeName="opacity" values="0;1" dur="2s" fill="freeze"/>
		</rect>
		<circle id="c1">
			<animate attributeName="fill" values="#ff0000;#0000ff" dur="2s"/>
		</circle>
	</svg>`)

	result := Convert(root, Options{})
	require.True(t, result.Success)
	assert.Len(t, result.Definitions, 2)
	assert.NotEmpty(t, result.Scenes)

	assert.Contains(t, result.XML, "<p:timing>")
	assert.Contains(t, result.XML, `<p:animEffect transition="in" filter="fade">`)
	assert.Contains(t, result.XML, `<p:animClr clrSpc="rgb">`)
	assert.Equal(t, 2, result.Summary.TotalAnimations)
	assert.Equal(t, 2.0, result.Summary.Duration)
}

func TestConvertMergesCSSAndSMIL(t *testing.T) {
	root := parseDoc(t, `<svg>
		<style>
			@keyframes fade { from { opacity: 0; } to { opacity: 1; } }
			#css-box { animation: fade 1s; }
		</style>
		<rect id="css-box"/>
		<rect id="smil-box">
			<animate attributeName="x" values="0;50" dur="1s"/>
		</rect>
	</svg>`)

	result := Convert(root, Options{})
	require.True(t, result.Success)
	assert.Len(t, result.Definitions, 2)
	assert.Equal(t, 2, result.Summary.TotalAnimations)
	assert.Equal(t, 2, result.Summary.ElementCount)
}

func TestConvertPolicyRejection(t *testing.T) {
	root := parseDoc(t, `<svg>
		<rect id="r1">
			<animate attributeName="opacity" values="0;1" dur="2s" calcMode="paced"/>
		</rect>
	</svg>`)

	result := Convert(root, Options{})
	assert.True(t, result.Success)
	assert.Empty(t, result.Definitions)
	assert.Empty(t, result.XML)
	assert.Contains(t, result.Warnings, policy.ReasonUnsupportedCalcMode)
}

func TestConvertShapeMapping(t *testing.T) {
	root := parseDoc(t, `<svg>
		<rect id="box">
			<animate attributeName="opacity" values="0;1" dur="1s"/>
		</rect>
	</svg>`)

	result := Convert(root, Options{ShapeMap: pptx.StaticMapper{"box": "7"}})
	require.True(t, result.Success)
	assert.Contains(t, result.XML, `spid="7"`)
}

func TestConvertTargetDuration(t *testing.T) {
	root := parseDoc(t, `<svg>
		<rect id="r1">
			<animate attributeName="opacity" values="0;1" dur="10s" fill="freeze"/>
		</rect>
	</svg>`)

	result := Convert(root, Options{TargetDuration: 1})
	require.True(t, result.Success)
	require.NotEmpty(t, result.Scenes)
	last := result.Scenes[len(result.Scenes)-1]
	assert.LessOrEqual(t, last.Time, 1.0)
}

func TestStats(t *testing.T) {
	root := parseDoc(t, `<svg>
		<rect id="r1">
			<animate attributeName="opacity" values="0;1" dur="2s"/>
			<animateTransform attributeName="transform" type="rotate" values="0;360" dur="3s"/>
		</rect>
	</svg>`)

	stats := Stats(root)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.UniqueElements)
	assert.Equal(t, 3.0, stats.Duration)
	assert.Equal(t, model.ComplexityModerate, stats.Complexity)
}

func TestStatsNilRoot(t *testing.T) {
	stats := Stats(nil)
	assert.Zero(t, stats.Total)
	assert.NotEmpty(t, stats.Warnings)
}
