package assets

import (
	"os"

	"github.com/pkg/errors"

	"github.com/hubastard/quadbatch/engine/core"
)

// LoadShaderSource reads a GLSL file from the shaders directory.
func (l *Loader) LoadShaderSource(name string) (string, error) {
	path := l.path("shaders", name)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "load shader %q", name)
	}
	return string(b), nil
}

// LoadShader compiles the vertex and fragment sources named vs and fs.
func (l *Loader) LoadShader(dev core.Device, vs, fs string) (core.Shader, error) {
	vsrc, err := l.LoadShaderSource(vs)
	if err != nil {
		return nil, err
	}
	fsrc, err := l.LoadShaderSource(fs)
	if err != nil {
		return nil, err
	}
	sh, err := dev.CreateShader(vsrc, fsrc)
	if err != nil {
		return nil, errors.Wrapf(err, "compile shader %s/%s", vs, fs)
	}
	return sh, nil
}
