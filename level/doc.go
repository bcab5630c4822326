// Package level generates the fixed-size background art for a match.
//
// Generation is a pure function of the layout: no randomness, no input,
// no failure mode. Every feature sits at a closed-form coordinate derived
// from named constants, and terrain uses coordinate-hashed dithers instead
// of flat fills.
//
//	levelMap := level.Generate(level.MOBA) // 288×512 RGBA8
//
// An Export publishes one generated buffer for repeated read-only access:
//
//	exp := level.NewExport(level.ParkingLot)
//	exp.Init()
//	exp.Init() // no-op, same buffer
//	upload(exp.Width(), exp.Height(), exp.Pixels())
package level
