package glbackend

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/hubastard/quadbatch/engine/core"
)

// Shader is a linked GL program with a uniform location cache.
type Shader struct {
	program  uint32
	uniforms map[string]int32
}

func (d *Device) CreateShader(vertexSrc, fragmentSrc string) (core.Shader, error) {
	prog, err := makeProgram(cstr(vertexSrc), cstr(fragmentSrc))
	if err != nil {
		return nil, err
	}
	return &Shader{program: prog, uniforms: make(map[string]int32)}, nil
}

func (s *Shader) Bind() { gl.UseProgram(s.program) }

// location returns -1 for uniforms the program does not have (or that the
// compiler optimized away); GL ignores uploads to -1.
func (s *Shader) location(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.program, gl.Str(cstr(name)))
	if loc < 0 {
		core.Logger().Debug("uniform not found", "program", s.program, "name", name)
	}
	s.uniforms[name] = loc
	return loc
}

func (s *Shader) SetInt(name string, v int32) { gl.Uniform1i(s.location(name), v) }

func (s *Shader) SetIntArray(name string, v []int32) {
	if len(v) == 0 {
		return
	}
	gl.Uniform1iv(s.location(name), int32(len(v)), &v[0])
}

func (s *Shader) SetFloat4(name string, v [4]float32) {
	gl.Uniform4f(s.location(name), v[0], v[1], v[2], v[3])
}

func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &m[0])
}

func (s *Shader) Release() {
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}

func cstr(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, errors.Errorf("glbackend: shader compile error: %s", strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, errors.Wrap(err, "vertex")
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, errors.Wrap(err, "fragment")
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, errors.Errorf("glbackend: program link error: %s", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}
