package model

import "time"

// ModeLength is the width of a rendered permission mode string.
const ModeLength = 11

// Record is a snapshot of one IPC object. Fields that do not belong to the
// record's Facility stay at their zero value.
type Record struct {
	Facility Facility
	ID       int
	Key      uint32
	Mode     string
	Owner    uint32
	Group    uint32

	// Creator tier
	Creator uint32
	CGroup  uint32

	// Outstanding tier
	CBytes  uint64 // message queues
	QNum    uint64 // message queues
	NAttach uint64 // shared memory

	// Size tier
	QBytes uint64 // message queues
	SegSz  uint64 // shared memory
	NSems  uint64 // semaphores

	// Process tier
	LSPid int // message queues
	LRPid int // message queues
	CPid  int // shared memory
	LPid  int // shared memory

	// Time tier; zero means the event never happened
	STime time.Time // message queues
	RTime time.Time // message queues
	ATime time.Time // shared memory
	DTime time.Time // shared memory
	OTime time.Time // semaphores
	CTime time.Time
}
