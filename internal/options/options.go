// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string // ROM file to run or list
	Output string // listing output file, stdout if empty
}

// Flags contains behavior options.
type Flags struct {
	List  bool // write a disassembly listing instead of running
	Trace bool // log every executed instruction
	Debug bool
	Quiet bool
}

// Emulation contains interpreter timing and compatibility options.
type Emulation struct {
	CyclesPerFrame int   // instructions executed per 60 Hz frame
	Scale          int   // window scale factor
	Seed           int64 // RNG seed, 0 selects a time-based seed

	QuirkShift bool // shifts read Vy instead of Vx
	QuirkJump  bool // jp V0 uses Vx from the address high nibble
	QuirkIndex bool // register block copies increment I
	QuirkWrap  bool // sprite pixels wrap instead of clipping
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	Emulation
}
