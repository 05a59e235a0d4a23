package config

import (
	"github.com/spf13/cobra"

	"github.com/pranshuparmar/ipcs/pkg/model"
)

// Selection holds the command line choices of facilities and column tiers.
type Selection struct {
	Queues       bool
	SharedMemory bool
	Semaphores   bool

	All         bool
	Bytes       bool
	Creator     bool
	Outstanding bool
	Process     bool
	Time        bool
}

// AddFacilityFlags adds the facility selection flags to a command.
func (s *Selection) AddFacilityFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVarP(&s.Queues, "queues", "q", false, "Report message queues")
	flags.BoolVarP(&s.SharedMemory, "shm", "m", false, "Report shared memory segments")
	flags.BoolVarP(&s.Semaphores, "semaphores", "s", false, "Report semaphore sets")
}

// AddColumnFlags adds the column tier flags to a command.
func (s *Selection) AddColumnFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVarP(&s.All, "all", "a", false, "Print all columns (same as -bcopt)")
	flags.BoolVarP(&s.Bytes, "bytes", "b", false, "Print size columns")
	flags.BoolVarP(&s.Creator, "creator", "c", false, "Print creator columns")
	flags.BoolVarP(&s.Outstanding, "outstanding", "o", false, "Print outstanding usage columns")
	flags.BoolVarP(&s.Process, "pids", "p", false, "Print process id columns")
	flags.BoolVarP(&s.Time, "time", "t", false, "Print time columns")
}

// AddReportFlags adds every report flag to a command.
func (s *Selection) AddReportFlags(cmd *cobra.Command) {
	s.AddFacilityFlags(cmd)
	s.AddColumnFlags(cmd)
}

// Facilities returns the selected facilities in report order. With no
// facility chosen, all of them are selected.
func (s Selection) Facilities() []model.Facility {
	if !s.Queues && !s.SharedMemory && !s.Semaphores {
		return append([]model.Facility(nil), model.Facilities...)
	}

	var out []model.Facility
	if s.Queues {
		out = append(out, model.FacilityMessageQueue)
	}
	if s.SharedMemory {
		out = append(out, model.FacilitySharedMemory)
	}
	if s.Semaphores {
		out = append(out, model.FacilitySemaphore)
	}
	return out
}

// Options returns the column tier bitset.
func (s Selection) Options() model.Option {
	if s.All {
		return model.OptAll
	}

	var o model.Option
	if s.Bytes {
		o |= model.OptBytes
	}
	if s.Creator {
		o |= model.OptCreator
	}
	if s.Outstanding {
		o |= model.OptOutstanding
	}
	if s.Process {
		o |= model.OptProcess
	}
	if s.Time {
		o |= model.OptTime
	}
	return o
}
