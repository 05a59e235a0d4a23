package sysvipc

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pranshuparmar/ipcs/pkg/model"
)

// Proc reads the kernel IPC tables exported under /proc/sysvipc.
type Proc struct {
	// Root is the directory holding the msg, shm and sem tables.
	Root string
	// MsgMnbPath holds the default queue size, which the tables omit.
	MsgMnbPath string

	log *zap.Logger
}

// NewProc returns a Proc reading from root. The msgmnb limit is looked up
// relative to root's parent, so /proc/sysvipc pairs with
// /proc/sys/kernel/msgmnb.
func NewProc(root string, logger *zap.Logger) *Proc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Proc{
		Root:       root,
		MsgMnbPath: filepath.Join(filepath.Dir(root), "sys", "kernel", "msgmnb"),
		log:        logger,
	}
}

func (p *Proc) Source() string {
	return hostLabel()
}

func (p *Proc) Collect(f model.Facility) []model.Record {
	if p.log == nil {
		p.log = zap.NewNop()
	}
	if !f.Valid() {
		return nil
	}
	path := filepath.Join(p.Root, tableName(f))

	data, err := os.ReadFile(path)
	if err != nil {
		p.log.Debug("facility table unavailable", zap.String("path", path), zap.Error(err))
		return nil
	}

	var qbytes uint64
	if f == model.FacilityMessageQueue {
		qbytes = p.msgmnb()
	}

	var records []model.Record
	scanner := bufio.NewScanner(bytes.NewReader(data))
	var cols map[string]int
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if cols == nil {
			cols = parseHeader(text)
			continue
		}

		r := row{cols: cols, fields: strings.Fields(text)}
		rec := r.record(f)
		if r.err != nil {
			p.log.Debug("skipping malformed row",
				zap.String("path", path), zap.Int("line", line), zap.Error(r.err))
			continue
		}
		if f == model.FacilityMessageQueue {
			rec.QBytes = qbytes
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		p.log.Debug("facility table read failed", zap.String("path", path), zap.Error(err))
		return nil
	}

	return records
}

func (p *Proc) msgmnb() uint64 {
	data, err := os.ReadFile(p.MsgMnbPath)
	if err != nil {
		p.log.Debug("msgmnb unavailable", zap.String("path", p.MsgMnbPath), zap.Error(err))
		return 0
	}
	v, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func tableName(f model.Facility) string {
	switch f {
	case model.FacilityMessageQueue:
		return "msg"
	case model.FacilitySharedMemory:
		return "shm"
	case model.FacilitySemaphore:
		return "sem"
	}
	return ""
}

func idColumn(f model.Facility) string {
	switch f {
	case model.FacilityMessageQueue:
		return "msqid"
	case model.FacilitySharedMemory:
		return "shmid"
	}
	return "semid"
}

func parseHeader(line string) map[string]int {
	cols := make(map[string]int)
	for i, name := range strings.Fields(line) {
		cols[name] = i
	}
	return cols
}

// row decodes one table line by column name. The first failure is kept in
// err and later lookups become no-ops.
type row struct {
	cols   map[string]int
	fields []string
	err    error
}

func (r *row) record(f model.Facility) model.Record {
	perm := r.permField("perms")
	rec := model.Record{
		Facility: f,
		ID:       r.intField(idColumn(f)),
		Key:      r.keyField("key"),
		Mode:     model.FormatMode(f, perm),
		Owner:    uint32(r.uintField("uid")),
		Group:    uint32(r.uintField("gid")),
		Creator:  uint32(r.uintField("cuid")),
		CGroup:   uint32(r.uintField("cgid")),
		CTime:    r.timeField("ctime"),
	}

	switch f {
	case model.FacilityMessageQueue:
		rec.CBytes = r.uintField("cbytes")
		rec.QNum = r.uintField("qnum")
		rec.LSPid = r.intField("lspid")
		rec.LRPid = r.intField("lrpid")
		rec.STime = r.timeField("stime")
		rec.RTime = r.timeField("rtime")
	case model.FacilitySharedMemory:
		rec.SegSz = r.uintField("size")
		rec.NAttach = r.uintField("nattch")
		rec.CPid = r.intField("cpid")
		rec.LPid = r.intField("lpid")
		rec.ATime = r.timeField("atime")
		rec.DTime = r.timeField("dtime")
	case model.FacilitySemaphore:
		rec.NSems = r.uintField("nsems")
		rec.OTime = r.timeField("otime")
	}
	return rec
}

func (r *row) field(name string) (string, bool) {
	if r.err != nil {
		return "", false
	}
	i, ok := r.cols[name]
	if !ok {
		r.err = fmt.Errorf("missing column %q", name)
		return "", false
	}
	if i >= len(r.fields) {
		r.err = fmt.Errorf("column %q: row has only %d fields", name, len(r.fields))
		return "", false
	}
	return r.fields[i], true
}

func (r *row) uintField(name string) uint64 {
	s, ok := r.field(name)
	if !ok {
		return 0
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		r.err = fmt.Errorf("column %q: %w", name, err)
	}
	return v
}

func (r *row) intField(name string) int {
	s, ok := r.field(name)
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		r.err = fmt.Errorf("column %q: %w", name, err)
	}
	return v
}

// The kernel prints the key as a signed decimal key_t.
func (r *row) keyField(name string) uint32 {
	s, ok := r.field(name)
	if !ok {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		r.err = fmt.Errorf("column %q: %w", name, err)
	}
	return uint32(int32(v))
}

func (r *row) permField(name string) uint32 {
	s, ok := r.field(name)
	if !ok {
		return 0
	}
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		r.err = fmt.Errorf("column %q: %w", name, err)
	}
	return uint32(v)
}

func (r *row) timeField(name string) time.Time {
	sec := r.uintField(name)
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(int64(sec), 0)
}
