package glbackend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuadFragmentSource(t *testing.T) {
	src := QuadFragmentSource(32)
	assert.Contains(t, src, "uniform sampler2D u_Textures[32];")
	assert.Contains(t, src, "case 0: texColor *= texture(u_Textures[0], uv);")
	assert.Contains(t, src, "case 31: texColor *= texture(u_Textures[31], uv);")
	assert.NotContains(t, src, "case 32:")
	assert.Equal(t, 32, strings.Count(src, "case "))
	assert.True(t, strings.HasPrefix(src, "#version 330 core"))
}

func TestQuadVertexSourceLayout(t *testing.T) {
	for _, attr := range []string{"a_Position", "a_Color", "a_TexCoord", "a_TexIndex", "a_TilingFactor"} {
		assert.Contains(t, QuadVertexSource, attr)
	}
	assert.Contains(t, QuadVertexSource, "uniform mat4 u_ViewProjection;")
}

func TestCStr(t *testing.T) {
	assert.Equal(t, "u_Textures\x00", cstr("u_Textures"))
	assert.Equal(t, "x\x00", cstr("x\x00"))
}
