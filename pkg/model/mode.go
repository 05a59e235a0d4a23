package model

// Permission word bits understood by FormatMode.
const (
	ModeSHMDest   uint32 = 0o1000
	ModeSHMLocked uint32 = 0o2000
)

// BlankMode is the mode string of a record with no known permissions.
const BlankMode = "-----------"

// FormatMode renders a kernel IPC permission word as an 11 character string:
// two flag characters followed by owner, group and other triplets.
//
//	shm 0o1640 -> "D-rw-r-----"
//	sem 0o600  -> "--ra-------"
func FormatMode(f Facility, perm uint32) string {
	b := []byte(BlankMode)

	if f == FacilitySharedMemory {
		if perm&ModeSHMDest != 0 {
			b[0] = 'D'
		}
		if perm&ModeSHMLocked != 0 {
			b[1] = 'L'
		}
	}

	write := byte('w')
	if f == FacilitySemaphore {
		write = 'a'
	}

	for i := 0; i < 3; i++ {
		shift := uint(6 - 3*i)
		bits := (perm >> shift) & 0o7
		if bits&0o4 != 0 {
			b[2+3*i] = 'r'
		}
		if bits&0o2 != 0 {
			b[3+3*i] = write
		}
	}
	return string(b)
}
