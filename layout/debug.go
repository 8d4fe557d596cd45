package layout

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteDebugJSON dumps the full box tree of a build result to path as
// indented JSON, for inspecting what the layout pass decided without
// rendering anything.
func WriteDebugJSON(res *Result, path string) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write layout dump: %w", err)
	}
	return nil
}
