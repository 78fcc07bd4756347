package prefabs

import (
	"fmt"

	"github.com/milk9111/spritefx/ease"
)

// LoadEasingScript compiles one .tengo script and registers it in table
// under its curve name.
func LoadEasingScript(table *ease.Table, path string) error {
	src, err := LoadScript(path)
	if err != nil {
		return fmt.Errorf("prefabs: load script %s: %w", path, err)
	}
	name := ScriptCurveName(path)
	script, err := ease.CompileScript(name, src)
	if err != nil {
		return fmt.Errorf("prefabs: %w", err)
	}
	table.Register(name, script.Func())
	return nil
}

// LoadEasingScripts registers every known script. A broken script does not
// stop the others from loading; the first error is returned.
func LoadEasingScripts(table *ease.Table) error {
	var first error
	for _, name := range ScriptNames() {
		if err := LoadEasingScript(table, name); err != nil && first == nil {
			first = err
		}
	}
	return first
}
