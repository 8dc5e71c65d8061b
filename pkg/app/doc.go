// Package app runs the event loop that ties a terminal, a canvas and a node
// tree together.
//
// Each iteration polls for one event, routes it through the tree, lays the
// tree out, redraws it and flushes the changed cells:
//
//	root := node.New(layout.NewRect(0, 0, 0, 0), node.WithLayout(node.LayoutVert))
//	a, err := app.New(root, app.WithQuitKeys(tui.KeyEscape))
//	if err != nil {
//		return err
//	}
//	defer a.Close()
//	return a.Run(ctx)
//
// The loop is single-threaded. Stop is the only method that may be called
// from another goroutine.
package app
