package glbackend

import (
	"fmt"
	"strings"
)

// QuadVertexSource matches the vertex layout of renderer2d.
const QuadVertexSource = `#version 330 core
layout(location = 0) in vec3 a_Position;
layout(location = 1) in vec4 a_Color;
layout(location = 2) in vec2 a_TexCoord;
layout(location = 3) in float a_TexIndex;
layout(location = 4) in float a_TilingFactor;

uniform mat4 u_ViewProjection;

out vec4 v_Color;
out vec2 v_TexCoord;
flat out float v_TexIndex;
out float v_TilingFactor;

void main() {
	v_Color = a_Color;
	v_TexCoord = a_TexCoord;
	v_TexIndex = a_TexIndex;
	v_TilingFactor = a_TilingFactor;
	gl_Position = u_ViewProjection * vec4(a_Position, 1.0);
}
`

// QuadFragmentSource samples u_Textures[v_TexIndex]. GLSL 3.30 only allows
// constant sampler array indices, hence the switch.
func QuadFragmentSource(slots int) string {
	var b strings.Builder
	fmt.Fprintf(&b, `#version 330 core
in vec4 v_Color;
in vec2 v_TexCoord;
flat in float v_TexIndex;
in float v_TilingFactor;

uniform sampler2D u_Textures[%d];

out vec4 o_Color;

void main() {
	vec2 uv = v_TexCoord * v_TilingFactor;
	vec4 texColor = v_Color;
	switch (int(v_TexIndex)) {
`, slots)
	for i := 0; i < slots; i++ {
		fmt.Fprintf(&b, "\tcase %d: texColor *= texture(u_Textures[%d], uv); break;\n", i, i)
	}
	b.WriteString(`	}
	if (texColor.a == 0.0)
		discard;
	o_Color = texColor;
}
`)
	return b.String()
}
