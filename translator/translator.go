// Package translator converts the WebGL2 (GLSL ES 3.00) shader sources of the
// shader table into the dialect of the running GL context.
package translator

import (
	"context"
	"fmt"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
	"github.com/richinsley/segments/shader"
)

// Result is a translated shader. Names maps identifiers of the original
// source to the identifiers used in Code; identifiers absent from the map
// kept their name.
type Result struct {
	Code  string
	Names map[string]string
}

var (
	shared     *gst.ShaderTranslator
	sharedErr  error
	sharedOnce sync.Once
)

// GLSL translates through goshadertranslator. The underlying translator is
// shared by every GLSL value in the process.
type GLSL struct {
	t    *gst.ShaderTranslator
	gles bool
}

// New returns a translator targeting desktop GLSL 4.10, or GLSL ES when gles
// is set.
func New(ctx context.Context, gles bool) (*GLSL, error) {
	sharedOnce.Do(func() {
		shared, sharedErr = gst.NewShaderTranslator(ctx)
	})
	if sharedErr != nil {
		return nil, fmt.Errorf("failed to start shader translator: %w", sharedErr)
	}
	return &GLSL{t: shared, gles: gles}, nil
}

func (g *GLSL) Translate(source string, stage shader.Stage) (Result, error) {
	outputFormat := gst.OutputFormatGLSL410
	if g.gles {
		outputFormat = gst.OutputFormatESSL
	}
	translated, err := g.t.TranslateShader(source, stage.String(), gst.ShaderSpecWebGL2, outputFormat)
	if err != nil {
		return Result{}, fmt.Errorf("%s shader translation failed: %w", stage, err)
	}
	names := make(map[string]string, len(translated.Variables))
	for name, v := range translated.Variables {
		if v.MappedName != "" {
			names[name] = v.MappedName
		}
	}
	return Result{Code: translated.Code, Names: names}, nil
}

// Passthrough hands sources to the compiler unchanged. Use it when the
// sources are already written for the target context.
type Passthrough struct{}

func (Passthrough) Translate(source string, _ shader.Stage) (Result, error) {
	return Result{Code: source}, nil
}
