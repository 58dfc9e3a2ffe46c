// Package svf parses Serial Vector Format (SVF) files into a stream of
// action records that a JTAG execution engine can replay.
//
// SVF is a compact, stateful command language: register parameters such as
// TDI and MASK are "sticky" and persist across commands until overridden,
// and several commands accept clauses in flexible, context-dependent order.
// The parser tracks that sticky state and emits, per command that requires
// external work, one self-contained action carrying the full picture (for a
// shift: header, data and trailer registers plus the configured end state).
//
// # Overview
//
// The package provides:
//   - Parser: holds the sticky session state for one parse
//   - Stream: lazily yields one Action per qualifying command
//   - Actions: Frequency, Shift, RunTest, StateSeq, Trst
//   - Error: the single error type, classified by Kind
//
// # Usage
//
//	p := svf.NewParser()
//	stream, err := p.ParseFile("vectors.svf") // or a .zip holding one .svf
//	if err != nil {
//		return err
//	}
//	defer stream.Close()
//	for {
//		act, err := stream.Next()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			return err // "vectors.svf:12: command SDR: ..."
//		}
//		switch a := act.(type) {
//		case svf.Shift:
//			engine.Shift(a)
//		case svf.RunTest:
//			engine.RunTest(a)
//		}
//	}
//
// Parsing is a single forward pass; memory use is bounded by the current
// command, not the file size. A parser instance may be reused across files,
// which intentionally carries sticky state from one file into the next.
//
// PIOMAP and PIO commands are not supported.
package svf
