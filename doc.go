// Package pythagoras renders an animated, interactive Pythagoras-tree
// fractal for [Ebitengine]: a recursive arrangement of squares whose
// branching angles and child sizes follow the pointer, and whose recursion
// depth grows on a timer until a maximum is reached.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	model := pythagoras.NewModel(pythagoras.DefaultConfig())
//	if err := pythagoras.Run(model, pythagoras.RunConfig{Title: "Pythagoras"}); err != nil {
//		log.Fatal(err)
//	}
//
// # Engine
//
// The core is windowless and pure: [Solve] computes one branching step,
// [CalcCache] memoizes those results under an LRU bound, [Builder] grows an
// arena-backed [Tree] of positioned squares, [Grower] schedules depth
// growth on a chained timer, and [PointerShape] maps pointer positions to
// [ShapeParams]. [Model] ties them together and can be driven directly, or
// from a JSON [Script] for headless sessions:
//
//	m := pythagoras.NewModel(pythagoras.DefaultConfig())
//	m.PointerMove(600, 150)
//	m.Advance(time.Second)
//	fmt.Println(m.Tree().Len())
//
// Everything runs on one goroutine; no type in this package is safe for
// concurrent use.
//
// [Ebitengine]: https://ebitengine.org
package pythagoras
