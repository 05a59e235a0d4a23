package output

import (
	"strconv"
	"time"

	"github.com/pranshuparmar/ipcs/pkg/model"
)

// keySize is sizeof(key_t).
const keySize = 4

// Column widths in characters.
const (
	TypeWidth    = 1
	IDWidth      = 10
	KeyWidth     = keySize * 2
	ModeWidth    = model.ModeLength
	OwnerWidth   = 8
	GroupWidth   = 8
	CreatorWidth = OwnerWidth
	CGroupWidth  = GroupWidth
	CBytesWidth  = 10
	QNumWidth    = 5
	QBytesWidth  = 10
	LSPidWidth   = 7
	LRPidWidth   = 7
	STimeWidth   = 9
	RTimeWidth   = 9
	NAttachWidth = 8
	SegSzWidth   = 6
	CPidWidth    = 7
	LPidWidth    = 7
	ATimeWidth   = 9
	DTimeWidth   = 9
	NSemsWidth   = 6
	OTimeWidth   = 9
	CTimeWidth   = 9
)

// NoEntry is printed for a time that was never set.
const NoEntry = "no-entry"

const timeLayout = "15:04:05"

// Column is one report column: its heading, its minimum width and how to
// pull the cell text out of a record.
type Column struct {
	Title string
	Width int
	Value func(model.Record) string
}

var (
	colType = Column{"T", TypeWidth, func(r model.Record) string { return r.Facility.String() }}
	colID   = Column{"ID", IDWidth, func(r model.Record) string { return strconv.Itoa(r.ID) }}
	colKey  = Column{"KEY", KeyWidth, func(r model.Record) string { return formatKey(r.Key) }}
	colMode = Column{"MODE", ModeWidth, func(r model.Record) string { return r.Mode }}

	colOwner   = Column{"OWNER", OwnerWidth, func(r model.Record) string { return uid(r.Owner) }}
	colGroup   = Column{"GROUP", GroupWidth, func(r model.Record) string { return uid(r.Group) }}
	colCreator = Column{"CREATOR", CreatorWidth, func(r model.Record) string { return uid(r.Creator) }}
	colCGroup  = Column{"CGROUP", CGroupWidth, func(r model.Record) string { return uid(r.CGroup) }}

	colCBytes  = Column{"CBYTES", CBytesWidth, func(r model.Record) string { return count(r.CBytes) }}
	colQNum    = Column{"QNUM", QNumWidth, func(r model.Record) string { return count(r.QNum) }}
	colNAttach = Column{"NATTCH", NAttachWidth, func(r model.Record) string { return count(r.NAttach) }}

	colQBytes = Column{"QBYTES", QBytesWidth, func(r model.Record) string { return count(r.QBytes) }}
	colSegSz  = Column{"SEGSZ", SegSzWidth, func(r model.Record) string { return count(r.SegSz) }}
	colNSems  = Column{"NSEMS", NSemsWidth, func(r model.Record) string { return count(r.NSems) }}

	colLSPid = Column{"LSPID", LSPidWidth, func(r model.Record) string { return strconv.Itoa(r.LSPid) }}
	colLRPid = Column{"LRPID", LRPidWidth, func(r model.Record) string { return strconv.Itoa(r.LRPid) }}
	colCPid  = Column{"CPID", CPidWidth, func(r model.Record) string { return strconv.Itoa(r.CPid) }}
	colLPid  = Column{"LPID", LPidWidth, func(r model.Record) string { return strconv.Itoa(r.LPid) }}

	colSTime = Column{"STIME", STimeWidth, func(r model.Record) string { return clock(r.STime) }}
	colRTime = Column{"RTIME", RTimeWidth, func(r model.Record) string { return clock(r.RTime) }}
	colATime = Column{"ATIME", ATimeWidth, func(r model.Record) string { return clock(r.ATime) }}
	colDTime = Column{"DTIME", DTimeWidth, func(r model.Record) string { return clock(r.DTime) }}
	colOTime = Column{"OTIME", OTimeWidth, func(r model.Record) string { return clock(r.OTime) }}
	colCTime = Column{"CTIME", CTimeWidth, func(r model.Record) string { return clock(r.CTime) }}
)

var baseColumns = []Column{colType, colID, colKey, colMode, colOwner, colGroup}

// tier is a group of columns gated by one option bit. perFacility columns
// come first, then common ones shared by every facility.
type tier struct {
	option      model.Option
	perFacility map[model.Facility][]Column
	common      []Column
}

// tiers is walked in order, so this order is the column order.
var tiers = []tier{
	{
		option: model.OptCreator,
		common: []Column{colCreator, colCGroup},
	},
	{
		option: model.OptOutstanding,
		perFacility: map[model.Facility][]Column{
			model.FacilityMessageQueue: {colCBytes, colQNum},
			model.FacilitySharedMemory: {colNAttach},
		},
	},
	{
		option: model.OptBytes,
		perFacility: map[model.Facility][]Column{
			model.FacilityMessageQueue: {colQBytes},
			model.FacilitySharedMemory: {colSegSz},
			model.FacilitySemaphore:    {colNSems},
		},
	},
	{
		option: model.OptProcess,
		perFacility: map[model.Facility][]Column{
			model.FacilityMessageQueue: {colLSPid, colLRPid},
			model.FacilitySharedMemory: {colCPid, colLPid},
		},
	},
	{
		option: model.OptTime,
		perFacility: map[model.Facility][]Column{
			model.FacilityMessageQueue: {colSTime, colRTime},
			model.FacilitySharedMemory: {colATime, colDTime},
			model.FacilitySemaphore:    {colOTime},
		},
		common: []Column{colCTime},
	},
}

// Columns returns the columns to print for facility f under opts.
func Columns(f model.Facility, opts model.Option) []Column {
	cols := append([]Column(nil), baseColumns...)
	for _, t := range tiers {
		if !opts.Has(t.option) {
			continue
		}
		cols = append(cols, t.perFacility[f]...)
		cols = append(cols, t.common...)
	}
	return cols
}

// Titles returns the headings of cols.
func Titles(cols []Column) []string {
	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.Title
	}
	return titles
}

func formatKey(key uint32) string {
	s := strconv.FormatUint(uint64(key), 16)
	for len(s) < KeyWidth-2 {
		s = "0" + s
	}
	return "0x" + s
}

func uid(id uint32) string {
	return strconv.FormatUint(uint64(id), 10)
}

func count(n uint64) string {
	return strconv.FormatUint(n, 10)
}

func clock(t time.Time) string {
	if t.IsZero() {
		return NoEntry
	}
	return t.Format(timeLayout)
}
