package model

import "testing"

func TestFormatMode(t *testing.T) {
	tests := []struct {
		name string
		f    Facility
		perm uint32
		want string
	}{
		{"queue 0666", FacilityMessageQueue, 0o666, "--rw-rw-rw-"},
		{"queue owner only", FacilityMessageQueue, 0o600, "--rw-------"},
		{"queue read only", FacilityMessageQueue, 0o444, "--r--r--r--"},
		{"shm dest", FacilitySharedMemory, 0o1640, "D-rw-r-----"},
		{"shm locked", FacilitySharedMemory, 0o2600, "-Lrw-------"},
		{"shm dest and locked", FacilitySharedMemory, 0o3000, "DL---------"},
		{"sem alter", FacilitySemaphore, 0o660, "--ra-ra----"},
		{"sem ignores shm flags", FacilitySemaphore, 0o1600, "--ra-------"},
		{"no permissions", FacilityMessageQueue, 0, BlankMode},
		{"execute bit ignored", FacilityMessageQueue, 0o777, "--rw-rw-rw-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatMode(tt.f, tt.perm)
			if got != tt.want {
				t.Fatalf("FormatMode(%q, %#o) = %q, want %q", tt.f, tt.perm, got, tt.want)
			}
			if len(got) != ModeLength {
				t.Fatalf("FormatMode(%q, %#o) has length %d, want %d", tt.f, tt.perm, len(got), ModeLength)
			}
		})
	}
}

func TestOptionHas(t *testing.T) {
	o := OptBytes | OptTime
	if !o.Has(OptBytes) || !o.Has(OptTime) {
		t.Fatalf("%05b should have bytes and time", o)
	}
	if o.Has(OptCreator) {
		t.Fatalf("%05b should not have creator", o)
	}
	if o.Has(OptNone) {
		t.Fatal("no option should never be reported as set")
	}
	if !OptAll.Has(OptBytes | OptCreator | OptOutstanding | OptProcess | OptTime) {
		t.Fatal("OptAll should include every tier")
	}
}

func TestFacilityName(t *testing.T) {
	want := map[Facility]string{
		FacilityMessageQueue: "Message Queues",
		FacilitySharedMemory: "Shared Memory",
		FacilitySemaphore:    "Semaphores",
	}
	for f, name := range want {
		if got := f.Name(); got != name {
			t.Errorf("%q.Name() = %q, want %q", f, got, name)
		}
		if !f.Valid() {
			t.Errorf("%q should be valid", f)
		}
	}
	if Facility('z').Valid() {
		t.Error("'z' should not be a valid facility")
	}
}
