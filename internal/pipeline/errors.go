package pipeline

import "fmt"

// TransformError reports a transformer failure. It names the stage and unit
// so a broken pass can be located without re-running the pipeline.
type TransformError struct {
	Stage       Stage
	Transformer string
	Err         error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform failed at stage %s (transformer %s): %v", e.Stage, e.Transformer, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}
