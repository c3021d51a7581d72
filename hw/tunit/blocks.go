package tunit

import (
	"strings"

	"tunit/hw/machine"
)

// MKLA5FPS is the refresh rate shared by all T-unit games.
const MKLA5FPS = 53.204950

const (
	scanTotal   = 288
	scanVisible = 254

	tms34010Clock = 50000000 / 8
)

// Block names.
const (
	BlockCore       = "tunit_core"
	BlockADPCMSound = "williams_adpcm_sound"
	BlockDCSAudio   = "dcs_audio"
	BlockTunitADPCM = "tunit_adpcm"
	BlockTunitDCS   = "tunit_dcs"
	BlockMK         = "mk"
	BlockNBAJam     = "nbajam"
)

// Sound boards.
const (
	BoardADPCM = "williams_adpcm"
	BoardDCS   = "dcs"
)

// samplePack splits a sample list into its pack name and files.
func samplePack(names []string) (string, []string) {
	return strings.TrimPrefix(names[0], "*"), names[1:]
}

func samplesChip(names []string) machine.SoundChip {
	pack, files := samplePack(names)
	return machine.SoundChip{
		Tag:      "samples",
		Type:     "SAMPLES",
		Channels: sampleChannels,
		Volume:   sampleVolume,
		Pack:     pack,
		Samples:  files,
	}
}

// Blocks returns the hardware configuration blocks of the family.
func Blocks() []*machine.Block {
	return []*machine.Block{
		{
			Name: BlockCore,
			CPUs: []machine.CPU{{
				Tag:          "main",
				Type:         "TMS34010",
				Clock:        tms34010Clock,
				Map:          MapName,
				ToShiftReg:   "midtunit_to_shiftreg",
				FromShiftReg: "midtunit_from_shiftreg",
			}},
			Timing: &machine.Timing{
				Refresh:     MKLA5FPS,
				ScanTotal:   scanTotal,
				ScanVisible: scanVisible,
			},
			Video: &machine.Video{
				Type:    "raster",
				Width:   400,
				Height:  256,
				Visible: machine.Rect{MinX: 0, MaxX: 399, MinY: 0, MaxY: 253},
				Palette: 32768,
				Start:   "midtunit",
				Update:  "midtunit",
			},
			NVRAM: &machine.NVRAM{Handler: "generic_0fill"},
			Init:  "midtunit",
		},
		{
			Name: BlockADPCMSound,
			CPUs: []machine.CPU{{Tag: "adpcm", Type: "M6809", Clock: 8000000 / 4}},
			Audio: &machine.Audio{
				Board: BoardADPCM,
				Chips: []machine.SoundChip{
					{Tag: "dac", Type: "DAC", Channels: 1},
					{Tag: "ym2151", Type: "YM2151", Clock: 3579545},
					{Tag: "oki", Type: "OKIM6295", Clock: 8000000 / 8},
				},
			},
		},
		{
			Name: BlockDCSAudio,
			CPUs: []machine.CPU{{Tag: "dcs", Type: "ADSP2105", Clock: 10000000}},
			Audio: &machine.Audio{
				Board: BoardDCS,
				Chips: []machine.SoundChip{{Tag: "dmadac", Type: "DMADAC", Channels: 1}},
			},
		},
		{
			Name:    BlockTunitADPCM,
			Imports: []string{BlockCore, BlockADPCMSound},
		},
		{
			Name:    BlockMK,
			Imports: []string{BlockCore, BlockADPCMSound},
			Audio: &machine.Audio{
				Attributes: []string{machine.AttrStereo},
				Chips:      []machine.SoundChip{samplesChip(mkSamples)},
			},
		},
		{
			Name:    BlockNBAJam,
			Imports: []string{BlockCore, BlockADPCMSound},
			Audio: &machine.Audio{
				Attributes: []string{machine.AttrStereo},
				Chips:      []machine.SoundChip{samplesChip(nbajamSamples)},
			},
		},
		{
			Name:    BlockTunitDCS,
			Imports: []string{BlockCore, BlockDCSAudio},
		},
	}
}
