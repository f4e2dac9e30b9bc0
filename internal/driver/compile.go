package driver

import (
	"os"

	"ember/internal/emit"
	"ember/internal/project"
)

type CompileResult struct {
	Check  *CheckResult
	Output string
}

// Compile runs the full pipeline: parse, typecheck, emit.
func Compile(path string, maxDiagnostics int) (*CompileResult, error) {
	checked, err := Check(path, maxDiagnostics)
	if err != nil {
		return &CompileResult{Check: checked}, err
	}
	return emitChecked(checked)
}

// CompileString runs the full pipeline over an in-memory source string.
func CompileString(name, src string, maxDiagnostics int) (*CompileResult, error) {
	checked, err := CheckString(name, src, maxDiagnostics)
	if err != nil {
		return &CompileResult{Check: checked}, err
	}
	return emitChecked(checked)
}

// CompileCached compiles path, consulting cache by source hash.
// Cached is true when the output came from the cache without running
// the pipeline. A nil cache degrades to a plain Compile.
func CompileCached(path string, maxDiagnostics int, cache *DiskCache) (result *CompileResult, cached bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	key := project.HashBytes(data)

	var payload DiskPayload
	if hit, err := cache.Get(key, &payload); err == nil && hit {
		return &CompileResult{Output: payload.Output}, true, nil
	}
	// Ошибки чтения кеша не фатальны: просто компилируем заново.

	result, err = CompileString(path, string(data), maxDiagnostics)
	if err != nil {
		return result, false, err
	}

	_ = cache.Put(key, &DiskPayload{
		Schema:     diskCacheSchemaVersion,
		SourcePath: path,
		SourceHash: key,
		Output:     result.Output,
	})
	return result, false, nil
}

func emitChecked(checked *CheckResult) (*CompileResult, error) {
	output, err := emit.File(checked.Parse.Builder, checked.Parse.FileID)
	if err != nil {
		return &CompileResult{Check: checked}, err
	}
	return &CompileResult{Check: checked, Output: output}, nil
}
