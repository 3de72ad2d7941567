// Package panel provides the docked panel builders: SidePanel, TopPanel,
// and CentralPanel.
//
// Panels are fixed regions along the window edges plus one central
// region that takes whatever is left. Declaration order matters: each
// edge panel shrinks the remaining area, and the central panel must come
// last.
//
//	ctx.BeginFrame(in)
//	panel.Left("file_tree").Show(ctx, func(r *ui.Region) {
//	    // panel content
//	})
//	panel.Central().Show(ctx, func(r *ui.Region) {
//	    // main content
//	})
//	out := ctx.EndFrame()
//
// # Builders
//
// Each builder is a value configured with With* methods that return
// modified copies, finished with a terminal Show call:
//
//	panel.Left("file_tree").
//	    WithDefaultWidth(240).
//	    WithMinWidth(120).
//	    Show(ctx, contents)
//
// A builder without its Show does nothing; the With* calls only collect
// configuration.
//
// # Resizing
//
// Side panels are resizable by default. When the pointer is within grab
// range of the panel's right edge, the cursor changes and a handle line
// is drawn; pressing there claims the window's single drag slot and the
// panel follows the pointer until the button is released. Widths are
// clamped to the panel's width range, and the panel's final rectangle is
// persisted under its identity so the width comes back next frame.
//
// # Content Sizing
//
// A panel's final rectangle hugs its content. Side panels force full
// height and top panels force full width, but the cross direction is
// content-driven: a side panel is only as wide as its widest content
// plus the frame margin, whatever width was persisted or dragged. Use
// Region.SetMinWidth inside the content callback to hold a width.
package panel
