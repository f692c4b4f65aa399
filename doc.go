// Package sprig is a small retained-mode UI toolkit.
//
// Sprig keeps a tree of widgets, lays it out with box and grid layouts,
// routes pointer and keyboard input through it, switches between named
// screens, and repaints everything every frame. Painting goes through the
// [Canvas] interface; [Run] provides a desktop host on [Ebitengine].
//
// # Quick start
//
//	root := sprig.NewBoxLayout("root", sprig.Vertical)
//	root.AddWidget(sprig.NewToolbar("bar", "Hello"))
//	btn := sprig.NewButton("go", "Press me")
//	btn.OnPress = func() { fmt.Println("pressed") }
//	root.AddWidget(btn)
//
//	app := sprig.NewApp(root)
//	if err := sprig.Run(app, sprig.RunConfig{Title: "Hello"}); err != nil {
//		log.Fatal(err)
//	}
//
// To drive the loop from another host, implement [Canvas] and
// [FrameScheduler] and call [App.Start], or call [App.Tick] once per frame,
// and forward input to [App.PointerDown], [App.PointerMove], [App.PointerUp]
// and [App.KeyDown].
//
// # Widgets
//
// Every element is a [Node]. Its [NodeType] decides how it paints and
// whether it reacts to a pointer-down. Create nodes with the typed
// constructors: [NewBoxLayout], [NewGridLayout], [NewScrollView],
// [NewScreen], [NewLabel], [NewButton], [NewTextInput], [NewSlider],
// [NewSwitch], [NewProgressBar], [NewToolbar], [NewCard], [NewDialog] and the
// shape nodes.
//
// Children paint in insertion order, so the last child is on top. A
// pointer-down is offered to children in reverse order and stops at the
// first one that consumes it.
//
// # Properties
//
// Observable attributes are [Property] values. Set notifies bound callbacks
// only when the value changes:
//
//	h := label.Text.Bind(func(n *sprig.Node, s string) error {
//		fmt.Println(n.Name, "now reads", s)
//		return nil
//	})
//	defer h.Remove()
//
// A failing callback never stops the others or undoes the assignment.
//
// # Layout
//
// A box layout gives hinted children a share of its main axis in proportion
// to [Hint] weights and stretches every child across the cross axis. A grid
// layout gives every child the same cell, filled row by row.
//
// # Screens
//
// A [ScreenManager] holds named screens; the first one added is current.
// Attach it with [App.SetScreens]. A [FadeTransition] fades each new screen
// in using [gween].
//
// # Errors
//
// A subtree that fails to paint is reported to the app's [ErrorHandler] as
// a [*DrawError] and the rest of the frame is still painted. Interaction
// events can be forwarded to an [EventSink]; the sprig/ecs module provides
// one backed by [Donburi].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package sprig
