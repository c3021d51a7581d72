package romset

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"hash/crc32"
	"runtime"

	"golang.org/x/sync/errgroup"

	"tunit/emu/log"
)

// ChecksumMismatch reports a ROM file whose content differs from what the
// set declares. It is a warning: the data is loaded anyway.
type ChecksumMismatch struct {
	Region   string
	File     string
	WantLen  uint32
	GotLen   int
	WantCRC  uint32
	GotCRC   uint32
	WantSHA1 string
	GotSHA1  string
}

func (m ChecksumMismatch) Error() string {
	if uint32(m.GotLen) != m.WantLen {
		return fmt.Sprintf("%s/%s: wrong length %d, want %d", m.Region, m.File, m.GotLen, m.WantLen)
	}
	return fmt.Sprintf("%s/%s: wrong checksum crc32=%08x sha1=%s, want crc32=%08x sha1=%s",
		m.Region, m.File, m.GotCRC, m.GotSHA1, m.WantCRC, m.WantSHA1)
}

// Report summarizes the loading of a set.
type Report struct {
	Set        string
	Files      int
	Bytes      int
	Mismatches []ChecksumMismatch
}

// OK reports whether all files matched their declaration.
func (r *Report) OK() bool { return len(r.Mismatches) == 0 }

// Image holds the loaded content of the regions of a set.
type Image struct {
	set     *Set
	regions map[string][]byte
}

// Region returns the content of the region with the given tag.
func (img *Image) Region(tag string) []byte { return img.regions[tag] }

// Dispose frees the regions flagged as disposable.
func (img *Image) Dispose() {
	for _, r := range img.set.Regions {
		if r.Dispose {
			delete(img.regions, r.Tag)
		}
	}
}

// Loader fills the regions of a set with ROM files read from Source.
type Loader struct {
	Source Source

	// Maximum number of files read concurrently, defaults to the number of
	// CPUs.
	Parallel int
}

type fileData struct {
	buf  []byte
	crc  uint32
	sha1 string
}

// Load reads all the files of set and copies them into their regions. A
// missing file is an error, a file with unexpected content is reported in
// the returned Report.
func (l *Loader) Load(ctx context.Context, set *Set) (*Image, *Report, error) {
	if err := set.Validate(); err != nil {
		return nil, nil, err
	}

	files := set.Files()
	data := make([]fileData, len(files))

	g, ctx := errgroup.WithContext(ctx)
	par := l.Parallel
	if par <= 0 {
		par = runtime.NumCPU()
	}
	g.SetLimit(par)

	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			buf, err := l.Source.ReadFile(name)
			if err != nil {
				return fmt.Errorf("set %s: %w", set.Name, err)
			}
			sum := sha1.Sum(buf)
			data[i] = fileData{buf: buf, crc: crc32.ChecksumIEEE(buf), sha1: hex.EncodeToString(sum[:])}

			log.ModROM.DebugZ("read rom file").
				String("file", name).
				Int("size", len(buf)).
				Hex32("crc", data[i].crc).
				End()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	byName := make(map[string]*fileData, len(files))
	for i, name := range files {
		byName[name] = &data[i]
	}

	img := &Image{set: set, regions: make(map[string][]byte, len(set.Regions))}
	rep := &Report{Set: set.Name, Files: len(files)}
	for _, r := range set.Regions {
		dst := make([]byte, r.Length)
		for _, ld := range r.Loads {
			fd := byName[ld.File]
			if m, bad := check(r.Tag, &ld, fd); bad {
				log.ModROM.WarnZ("rom file mismatch").
					String("set", set.Name).
					String("region", r.Tag).
					String("file", ld.File).
					Error("err", m).
					End()
				rep.Mismatches = append(rep.Mismatches, m)
			}
			for _, off := range append([]uint32{ld.Offset}, ld.Reload...) {
				copyLoad(dst, off, &ld, fd.buf)
			}
			rep.Bytes += int(ld.Length)
		}
		img.regions[r.Tag] = dst
	}

	log.ModROM.InfoZ("rom set loaded").
		String("set", set.Name).
		Int("files", rep.Files).
		Int("mismatches", len(rep.Mismatches)).
		End()
	return img, rep, nil
}

func check(region string, ld *Load, fd *fileData) (ChecksumMismatch, bool) {
	m := ChecksumMismatch{
		Region:   region,
		File:     ld.File,
		WantLen:  ld.Length,
		GotLen:   len(fd.buf),
		WantCRC:  ld.CRC,
		GotCRC:   fd.crc,
		WantSHA1: ld.SHA1,
		GotSHA1:  fd.sha1,
	}
	bad := uint32(len(fd.buf)) != ld.Length ||
		(ld.CRC != 0 && fd.crc != ld.CRC) ||
		(ld.SHA1 != "" && fd.sha1 != ld.SHA1)
	return m, bad
}

// copyLoad copies at most ld.Length bytes of buf into dst at offset off.
func copyLoad(dst []byte, off uint32, ld *Load, buf []byte) {
	n := min(uint32(len(buf)), ld.Length)
	switch ld.Mode {
	case Byte16:
		for i := range n {
			dst[off+2*i] = buf[i]
		}
	default:
		copy(dst[off:off+n], buf[:n])
	}
}
