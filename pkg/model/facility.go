package model

// Facility identifies one of the System V IPC object categories. The byte
// value doubles as the letter printed in the T column.
type Facility byte

const (
	FacilityMessageQueue Facility = 'q'
	FacilitySharedMemory Facility = 'm'
	FacilitySemaphore    Facility = 's'
)

// Facilities lists every facility in report order.
var Facilities = []Facility{
	FacilityMessageQueue,
	FacilitySharedMemory,
	FacilitySemaphore,
}

// Name returns the display name used in report headings.
func (f Facility) Name() string {
	switch f {
	case FacilityMessageQueue:
		return "Message Queues"
	case FacilitySharedMemory:
		return "Shared Memory"
	case FacilitySemaphore:
		return "Semaphores"
	}
	return "Unknown"
}

func (f Facility) String() string {
	return string(rune(f))
}

// Valid reports whether f is one of the known facilities.
func (f Facility) Valid() bool {
	switch f {
	case FacilityMessageQueue, FacilitySharedMemory, FacilitySemaphore:
		return true
	}
	return false
}

// Option is a bitset of optional column tiers.
type Option uint8

const (
	OptBytes Option = 1 << iota
	OptCreator
	OptOutstanding
	OptProcess
	OptTime

	OptNone Option = 0
	OptAll         = OptBytes | OptCreator | OptOutstanding | OptProcess | OptTime
)

// Has reports whether every bit of o2 is set in o.
func (o Option) Has(o2 Option) bool {
	return o2 != 0 && o&o2 == o2
}
