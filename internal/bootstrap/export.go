package bootstrap

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"revenue-dashboard/internal/dashboard/adapters/render"
	"revenue-dashboard/internal/dashboard/core/graph"
	"revenue-dashboard/internal/platform/log"
)

// Export renders every view of one dashboard into dir and returns the
// written paths. A nil selection means the configured defaults.
func (a *App) Export(dashboard string, sel []string, dir, format string) ([]string, error) {
	f, err := render.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	b, err := a.Service.Board(dashboard)
	if err != nil {
		return nil, err
	}

	if sel == nil {
		sel = b.Defaults
	}
	g, err := b.BuildWith(a.Adapter, graph.Selection(sel))
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	renderLog := a.Logger.WithComponent(log.ComponentRender)
	var paths []string
	for _, v := range g.Views() {
		var buf bytes.Buffer
		if err := a.Renderer.Render(&buf, v.Output, f); err != nil {
			return paths, err
		}

		path := filepath.Join(dir, fmt.Sprintf("%s-%s.%s", dashboard, v.Name, f))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		renderLog.Info("view rendered", "dashboard", dashboard, "view", v.Name, "path", path, "omitted", len(v.Output.Omitted))
		paths = append(paths, path)
	}
	return paths, nil
}
