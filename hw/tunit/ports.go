package tunit

import "tunit/hw/input"

// PortSets returns the input port sets of the family. nbajamte is declared
// as a diff over nbajam.
func PortSets() []*input.PortSet { return portSets }

var portSets = []*input.PortSet{
	{Name: "mk", Ports: []input.Port{
		{Tag: "IN0", Bits: []input.Bit{
			{Mask: 0x0001, Type: input.JoystickUp, Player: 1, Flags: input.Way8},
			{Mask: 0x0002, Type: input.JoystickDown, Player: 1, Flags: input.Way8},
			{Mask: 0x0004, Type: input.JoystickLeft, Player: 1, Flags: input.Way8},
			{Mask: 0x0008, Type: input.JoystickRight, Player: 1, Flags: input.Way8},
			{Mask: 0x0010, Type: input.Button2, Player: 1},
			{Mask: 0x0020, Type: input.Button5, Player: 1},
			{Mask: 0x0040, Type: input.Button3, Player: 1},
			{Mask: 0x0080, Type: input.Unused},
			{Mask: 0x0100, Type: input.JoystickUp, Player: 2, Flags: input.Way8},
			{Mask: 0x0200, Type: input.JoystickDown, Player: 2, Flags: input.Way8},
			{Mask: 0x0400, Type: input.JoystickLeft, Player: 2, Flags: input.Way8},
			{Mask: 0x0800, Type: input.JoystickRight, Player: 2, Flags: input.Way8},
			{Mask: 0x1000, Type: input.Button2, Player: 2},
			{Mask: 0x2000, Type: input.Button5, Player: 2},
			{Mask: 0x4000, Type: input.Button3, Player: 2},
			{Mask: 0x8000, Type: input.Unused},
		}},
		{Tag: "IN1", Bits: []input.Bit{
			{Mask: 0x0001, Type: input.Coin1},
			{Mask: 0x0002, Type: input.Coin2},
			{Mask: 0x0004, Type: input.Start1},
			{Mask: 0x0008, Type: input.Tilt},
			{Mask: 0x0010, Type: input.Service, Flags: input.Toggle, Name: "Test"},
			{Mask: 0x0020, Type: input.Start2},
			{Mask: 0x0040, Type: input.Service1},
			{Mask: 0x0080, Type: input.Coin3},
			{Mask: 0x0100, Type: input.Coin4},
			{Mask: 0x0200, Type: input.Button1, Player: 2},
			{Mask: 0x0400, Type: input.Button4, Player: 2},
			{Mask: 0x0800, Type: input.Button6, Player: 2},
			{Mask: 0x1000, Type: input.Button1, Player: 1},
			{Mask: 0x2000, Type: input.Button4, Player: 1},
			{Mask: 0x4000, Type: input.Unused},
			{Mask: 0x8000, Type: input.Button6, Player: 1},
		}},
		{Tag: "IN2", Bits: []input.Bit{
			{Mask: 0xffff, Type: input.Unknown},
		}},
		{Tag: "DSW", Dips: []input.Dip{
			{Mask: 0x0001, Default: 0x0001, Name: "Test Switch", Settings: []input.Setting{
				{Value: 0x0001, Label: "Off"},
				{Value: 0x0000, Label: "On"},
			}},
			{Mask: 0x0002, Default: 0x0000, Name: "Counters", Settings: []input.Setting{
				{Value: 0x0002, Label: "One"},
				{Value: 0x0000, Label: "Two"},
			}},
			{Mask: 0x007c, Default: 0x007c, Name: "Coinage", Settings: []input.Setting{
				{Value: 0x007c, Label: "USA-1"},
				{Value: 0x003c, Label: "USA-2"},
				{Value: 0x005c, Label: "USA-3"},
				{Value: 0x001c, Label: "USA-4"},
				{Value: 0x006c, Label: "USA-ECA"},
				{Value: 0x000c, Label: "USA-Free Play"},
				{Value: 0x0074, Label: "German-1"},
				{Value: 0x0034, Label: "German-2"},
				{Value: 0x0054, Label: "German-3"},
				{Value: 0x0014, Label: "German-4"},
				{Value: 0x0064, Label: "German-5"},
				{Value: 0x0024, Label: "German-ECA"},
				{Value: 0x0004, Label: "German-Free Play"},
				{Value: 0x0078, Label: "French-1"},
				{Value: 0x0038, Label: "French-2"},
				{Value: 0x0058, Label: "French-3"},
				{Value: 0x0018, Label: "French-4"},
				{Value: 0x0068, Label: "French-ECA"},
				{Value: 0x0008, Label: "French-Free Play"},
			}},
			{Mask: 0x0080, Default: 0x0000, Name: "Coinage Source", Settings: []input.Setting{
				{Value: 0x0080, Label: "Dipswitch"},
				{Value: 0x0000, Label: "CMOS"},
			}},
			{Mask: 0x0100, Default: 0x0000, Name: "Skip Post Test", Settings: []input.Setting{
				{Value: 0x0100, Label: "Off"},
				{Value: 0x0000, Label: "On"},
			}},
			{Mask: 0x0200, Default: 0x0200, Name: "Unused 1", Settings: []input.Setting{
				{Value: 0x0200, Label: "Off"},
				{Value: 0x0000, Label: "On"},
			}},
			{Mask: 0x0400, Default: 0x0400, Name: "Unused 2", Settings: []input.Setting{
				{Value: 0x0400, Label: "Off"},
				{Value: 0x0000, Label: "On"},
			}},
			{Mask: 0x0800, Default: 0x0800, Name: "Comic Book Offer", Settings: []input.Setting{
				{Value: 0x0000, Label: "Off"},
				{Value: 0x0800, Label: "On"},
			}},
			{Mask: 0x1000, Default: 0x1000, Name: "Attract Sound", Settings: []input.Setting{
				{Value: 0x0000, Label: "Off"},
				{Value: 0x1000, Label: "On"},
			}},
			{Mask: 0x2000, Default: 0x2000, Name: "Low Blows", Settings: []input.Setting{
				{Value: 0x0000, Label: "Off"},
				{Value: 0x2000, Label: "On"},
			}},
			{Mask: 0x4000, Default: 0x4000, Name: "Blood", Settings: []input.Setting{
				{Value: 0x0000, Label: "Off"},
				{Value: 0x4000, Label: "On"},
			}},
			{Mask: 0x8000, Default: 0x8000, Name: "Violence", Settings: []input.Setting{
				{Value: 0x0000, Label: "Off"},
				{Value: 0x8000, Label: "On"},
			}},
		}},
	}},
	{Name: "mk2", Ports: []input.Port{
		{Tag: "IN0", Bits: []input.Bit{
			{Mask: 0x0001, Type: input.JoystickUp, Player: 1, Flags: input.Way8},
			{Mask: 0x0002, Type: input.JoystickDown, Player: 1, Flags: input.Way8},
			{Mask: 0x0004, Type: input.JoystickLeft, Player: 1, Flags: input.Way8},
			{Mask: 0x0008, Type: input.JoystickRight, Player: 1, Flags: input.Way8},
			{Mask: 0x0010, Type: input.Button2, Player: 1},
			{Mask: 0x0020, Type: input.Button5, Player: 1},
			{Mask: 0x0040, Type: input.Button3, Player: 1},
			{Mask: 0x0080, Type: input.Unused},
			{Mask: 0x0100, Type: input.JoystickUp, Player: 2, Flags: input.Way8},
			{Mask: 0x0200, Type: input.JoystickDown, Player: 2, Flags: input.Way8},
			{Mask: 0x0400, Type: input.JoystickLeft, Player: 2, Flags: input.Way8},
			{Mask: 0x0800, Type: input.JoystickRight, Player: 2, Flags: input.Way8},
			{Mask: 0x1000, Type: input.Button2, Player: 2},
			{Mask: 0x2000, Type: input.Button5, Player: 2},
			{Mask: 0x4000, Type: input.Button3, Player: 2},
			{Mask: 0x8000, Type: input.Unused},
		}},
		{Tag: "IN1", Bits: []input.Bit{
			{Mask: 0x0001, Type: input.Coin1},
			{Mask: 0x0002, Type: input.Coin2},
			{Mask: 0x0004, Type: input.Start1},
			{Mask: 0x0008, Type: input.Tilt},
			{Mask: 0x0010, Type: input.Service, Name: "Test"},
			{Mask: 0x0020, Type: input.Start2},
			{Mask: 0x0040, Type: input.Service1},
			{Mask: 0x0080, Type: input.Coin3},
			{Mask: 0x0100, Type: input.Coin4},
			{Mask: 0x0600, Type: input.Unused},
			{Mask: 0x0800, Type: input.VolumeDown, Name: "Volume Down"},
			{Mask: 0x1000, Type: input.VolumeUp, Name: "Volume Up"},
			{Mask: 0x6000, Type: input.Unused},
			{Mask: 0x8000, Type: input.Unused},
		}},
		{Tag: "IN2", Bits: []input.Bit{
			{Mask: 0x0001, Type: input.Button1, Player: 1},
			{Mask: 0x0002, Type: input.Button4, Player: 1},
			{Mask: 0x0004, Type: input.Button6, Player: 1},
			{Mask: 0x0008, Type: input.Unused},
			{Mask: 0x0010, Type: input.Button1, Player: 2},
			{Mask: 0x0020, Type: input.Button4, Player: 2},
			{Mask: 0x0040, Type: input.Button6, Player: 2},
			{Mask: 0xff80, Type: input.Unused},
		}},
		{Tag: "DSW", Dips: []input.Dip{
			{Mask: 0x0001, Default: 0x0001, Name: "Test Switch", Settings: []input.Setting{
				{Value: 0x0001, Label: "Off"},
				{Value: 0x0000, Label: "On"},
			}},
			{Mask: 0x0002, Default: 0x0000, Name: "Counters", Settings: []input.Setting{
				{Value: 0x0002, Label: "One"},
				{Value: 0x0000, Label: "Two"},
			}},
			{Mask: 0x007c, Default: 0x007c, Name: "Coinage", Settings: []input.Setting{
				{Value: 0x007c, Label: "USA-1"},
				{Value: 0x003c, Label: "USA-2"},
				{Value: 0x005c, Label: "USA-3"},
				{Value: 0x001c, Label: "USA-4"},
				{Value: 0x006c, Label: "USA-ECA"},
				{Value: 0x000c, Label: "USA-Free Play"},
				{Value: 0x0074, Label: "German-1"},
				{Value: 0x0034, Label: "German-2"},
				{Value: 0x0054, Label: "German-3"},
				{Value: 0x0014, Label: "German-4"},
				{Value: 0x0064, Label: "German-5"},
				{Value: 0x0024, Label: "German-ECA"},
				{Value: 0x0004, Label: "German-Free Play"},
				{Value: 0x0078, Label: "French-1"},
				{Value: 0x0038, Label: "French-2"},
				{Value: 0x0058, Label: "French-3"},
				{Value: 0x0018, Label: "French-4"},
				{Value: 0x0068, Label: "French-ECA"},
				{Value: 0x0008, Label: "French-Free Play"},
			}},
			{Mask: 0x0080, Default: 0x0000, Name: "Coinage Source", Settings: []input.Setting{
				{Value: 0x0080, Label: "Dipswitch"},
				{Value: 0x0000, Label: "CMOS"},
			}},
			{Mask: 0x0100, Default: 0x0000, Name: "Circuit Boards", Settings: []input.Setting{
				{Value: 0x0100, Label: "2"},
				{Value: 0x0000, Label: "1"},
			}},
			{Mask: 0x0200, Default: 0x0000, Name: "Powerup Test", Settings: []input.Setting{
				{Value: 0x0000, Label: "Off"},
				{Value: 0x0200, Label: "On"},
			}},
			{Mask: 0x0400, Default: 0x0400, Name: "Bill Validator", Settings: []input.Setting{
				{Value: 0x0000, Label: "Installed"},
				{Value: 0x0400, Label: "Not Present"},
			}},
			{Mask: 0x0800, Default: 0x0800, Name: "Comic Book Offer", Settings: []input.Setting{
				{Value: 0x0000, Label: "Off"},
				{Value: 0x0800, Label: "On"},
			}},
			{Mask: 0x1000, Default: 0x1000, Name: "Attract Sound", Settings: []input.Setting{
				{Value: 0x0000, Label: "Off"},
				{Value: 0x1000, Label: "On"},
			}},
			{Mask: 0x2000, Default: 0x2000, Name: "Low Blows", Settings: []input.Setting{
				{Value: 0x0000, Label: "Off"},
				{Value: 0x2000, Label: "On"},
			}},
			{Mask: 0x4000, Default: 0x4000, Name: "Blood", Settings: []input.Setting{
				{Value: 0x0000, Label: "Off"},
				{Value: 0x4000, Label: "On"},
			}},
			{Mask: 0x8000, Default: 0x8000, Name: "Violence", Settings: []input.Setting{
				{Value: 0x0000, Label: "Off"},
				{Value: 0x8000, Label: "On"},
			}},
		}},
	}},
	{Name: "jdreddp", Ports: []input.Port{
		{Tag: "IN0", Bits: []input.Bit{
			{Mask: 0x0001, Type: input.JoystickUp, Player: 1, Flags: input.Way8},
			{Mask: 0x0002, Type: input.JoystickDown, Player: 1, Flags: input.Way8},
			{Mask: 0x0004, Type: input.JoystickLeft, Player: 1, Flags: input.Way8},
			{Mask: 0x0008, Type: input.JoystickRight, Player: 1, Flags: input.Way8},
			{Mask: 0x0010, Type: input.Button2, Player: 1},
			{Mask: 0x0020, Type: input.Button3, Player: 1},
			{Mask: 0x0040, Type: input.Button1, Player: 1},
			{Mask: 0x0080, Type: input.Button4, Player: 1},
			{Mask: 0x0100, Type: input.JoystickUp, Player: 2, Flags: input.Way8},
			{Mask: 0x0200, Type: input.JoystickDown, Player: 2, Flags: input.Way8},
			{Mask: 0x0400, Type: input.JoystickLeft, Player: 2, Flags: input.Way8},
			{Mask: 0x0800, Type: input.JoystickRight, Player: 2, Flags: input.Way8},
			{Mask: 0x1000, Type: input.Button2, Player: 2},
			{Mask: 0x2000, Type: input.Button3, Player: 2},
			{Mask: 0x4000, Type: input.Button1, Player: 2},
			{Mask: 0x8000, Type: input.Button4, Player: 2},
		}},
		{Tag: "IN1", Bits: []input.Bit{
			{Mask: 0x0001, Type: input.Coin1},
			{Mask: 0x0002, Type: input.Coin2},
			{Mask: 0x0004, Type: input.Start1},
			{Mask: 0x0008, Type: input.Tilt},
			{Mask: 0x0010, Type: input.Service, Flags: input.Toggle, Name: "Test"},
			{Mask: 0x0020, Type: input.Start2},
			{Mask: 0x0040, Type: input.Service1},
			{Mask: 0x0080, Type: input.Coin3},
			{Mask: 0x0100, Type: input.Coin4},
			{Mask: 0x0200, Type: input.Start3},
			{Mask: 0x0400, Type: input.Start4},
			{Mask: 0x0800, Type: input.VolumeDown, Name: "Volume Down"},
			{Mask: 0x1000, Type: input.VolumeUp, Name: "Volume Up"},
			{Mask: 0xe000, Type: input.Unused},
		}},
		{Tag: "IN2", Bits: []input.Bit{
			{Mask: 0x0001, Type: input.JoystickUp, Player: 3, Flags: input.Way8},
			{Mask: 0x0002, Type: input.JoystickDown, Player: 3, Flags: input.Way8},
			{Mask: 0x0004, Type: input.JoystickLeft, Player: 3, Flags: input.Way8},
			{Mask: 0x0008, Type: input.JoystickRight, Player: 3, Flags: input.Way8},
			{Mask: 0x0010, Type: input.Button2, Player: 3},
			{Mask: 0x0020, Type: input.Button3, Player: 3},
			{Mask: 0x0040, Type: input.Button1, Player: 3},
			{Mask: 0x0080, Type: input.Button4, Player: 3},
			{Mask: 0xff00, Type: input.Unused},
		}},
		{Tag: "DSW", Dips: []input.Dip{
			{Mask: 0x0001, Default: 0x0001, Name: "Test Switch", Settings: []input.Setting{
				{Value: 0x0001, Label: "Off"},
				{Value: 0x0000, Label: "On"},
			}},
			{Mask: 0x0002, Default: 0x0002, Name: "Unused 1", Settings: []input.Setting{
				{Value: 0x0002, Label: "Off"},
				{Value: 0x0000, Label: "On"},
			}},
			{Mask: 0x0004, Default: 0x0004, Name: "Unused 2", Settings: []input.Setting{
				{Value: 0x0004, Label: "Off"},
				{Value: 0x0000, Label: "On"},
			}},
			{Mask: 0x0008, Default: 0x0008, Name: "Unused 3", Settings: []input.Setting{
				{Value: 0x0008, Label: "Off"},
				{Value: 0x0000, Label: "On"},
			}},
			{Mask: 0x0010, Default: 0x0010, Name: "Unused 4", Settings: []input.Setting{
				{Value: 0x0010, Label: "Off"},
				{Value: 0x0000, Label: "On"},
			}},
			{Mask: 0x0020, Default: 0x0020, Name: "Blood", Settings: []input.Setting{
				{Value: 0x0000, Label: "Off"},
				{Value: 0x0020, Label: "On"},
			}},
			{Mask: 0x0040, Default: 0x0040, Name: "Validator", Settings: []input.Setting{
				{Value: 0x0000, Label: "Installed"},
				{Value: 0x0040, Label: "None"},
			}},
			{Mask: 0x0080, Default: 0x0080, Name: "Freeze", Settings: []input.Setting{
				{Value: 0x0080, Label: "Off"},
				{Value: 0x0000, Label: "On"},
			}},
			{Mask: 0x0300, Default: 0x0000, Name: "Coin Counters", Settings: []input.Setting{
				{Value: 0x0200, Label: "1 Counter, Totalizing"},
				{Value: 0x0100, Label: "2 Counters, 1 count/coin"},
				{Value: 0x0000, Label: "1 Counter, 1 count/coin"},
			}},
			{Mask: 0x0c00, Default: 0x0c00, Name: "Country", Settings: []input.Setting{
				{Value: 0x0c00, Label: "USA"},
				{Value: 0x0800, Label: "French"},
				{Value: 0x0400, Label: "German"},
				{Value: 0x0000, Label: "Unused"},
			}},
			{Mask: 0x7000, Default: 0x5000, Name: "Coinage", Settings: []input.Setting{
				{Value: 0x7000, Label: "1"},
				{Value: 0x3000, Label: "2"},
				{Value: 0x5000, Label: "3"},
				{Value: 0x1000, Label: "4"},
				{Value: 0x6000, Label: "ECA"},
				{Value: 0x0000, Label: "Free Play"},
			}},
			{Mask: 0x8000, Default: 0x0000, Name: "Coinage Source", Settings: []input.Setting{
				{Value: 0x8000, Label: "Dipswitch"},
				{Value: 0x0000, Label: "CMOS"},
			}},
		}},
	}},
	{Name: "nbajam", Ports: []input.Port{
		{Tag: "IN0", Bits: []input.Bit{
			{Mask: 0x0001, Type: input.JoystickUp, Player: 1, Flags: input.Way8},
			{Mask: 0x0002, Type: input.JoystickDown, Player: 1, Flags: input.Way8},
			{Mask: 0x0004, Type: input.JoystickLeft, Player: 1, Flags: input.Way8},
			{Mask: 0x0008, Type: input.JoystickRight, Player: 1, Flags: input.Way8},
			{Mask: 0x0010, Type: input.Button2, Player: 1},
			{Mask: 0x0020, Type: input.Button3, Player: 1},
			{Mask: 0x0040, Type: input.Button1, Player: 1},
			{Mask: 0x0080, Type: input.Unused},
			{Mask: 0x0100, Type: input.JoystickUp, Player: 2, Flags: input.Way8},
			{Mask: 0x0200, Type: input.JoystickDown, Player: 2, Flags: input.Way8},
			{Mask: 0x0400, Type: input.JoystickLeft, Player: 2, Flags: input.Way8},
			{Mask: 0x0800, Type: input.JoystickRight, Player: 2, Flags: input.Way8},
			{Mask: 0x1000, Type: input.Button2, Player: 2},
			{Mask: 0x2000, Type: input.Button3, Player: 2},
			{Mask: 0x4000, Type: input.Button1, Player: 2},
			{Mask: 0x8000, Type: input.Unused},
		}},
		{Tag: "IN1", Bits: []input.Bit{
			{Mask: 0x0001, Type: input.Coin1},
			{Mask: 0x0002, Type: input.Coin2},
			{Mask: 0x0004, Type: input.Start1},
			{Mask: 0x0008, Type: input.Tilt},
			{Mask: 0x0010, Type: input.Service, Flags: input.Toggle, Name: "Test"},
			{Mask: 0x0020, Type: input.Start2},
			{Mask: 0x0040, Type: input.Service1},
			{Mask: 0x0080, Type: input.Coin3},
			{Mask: 0x0100, Type: input.Coin4},
			{Mask: 0x0200, Type: input.Start3},
			{Mask: 0x0400, Type: input.Start4},
			{Mask: 0x0800, Type: input.VolumeDown, Name: "Volume Down"},
			{Mask: 0x1000, Type: input.VolumeUp, Name: "Volume Up"},
			{Mask: 0xe000, Type: input.Unused},
		}},
		{Tag: "IN2", Bits: []input.Bit{
			{Mask: 0x0001, Type: input.JoystickUp, Player: 3, Flags: input.Way8},
			{Mask: 0x0002, Type: input.JoystickDown, Player: 3, Flags: input.Way8},
			{Mask: 0x0004, Type: input.JoystickLeft, Player: 3, Flags: input.Way8},
			{Mask: 0x0008, Type: input.JoystickRight, Player: 3, Flags: input.Way8},
			{Mask: 0x0010, Type: input.Button2, Player: 3},
			{Mask: 0x0020, Type: input.Button3, Player: 3},
			{Mask: 0x0040, Type: input.Button1, Player: 3},
			{Mask: 0x0080, Type: input.Unused},
			{Mask: 0x0100, Type: input.JoystickUp, Player: 4, Flags: input.Way8},
			{Mask: 0x0200, Type: input.JoystickDown, Player: 4, Flags: input.Way8},
			{Mask: 0x0400, Type: input.JoystickLeft, Player: 4, Flags: input.Way8},
			{Mask: 0x0800, Type: input.JoystickRight, Player: 4, Flags: input.Way8},
			{Mask: 0x1000, Type: input.Button2, Player: 4},
			{Mask: 0x2000, Type: input.Button3, Player: 4},
			{Mask: 0x4000, Type: input.Button1, Player: 4},
			{Mask: 0x8000, Type: input.Unused},
		}},
		{Tag: "DSW", Dips: []input.Dip{
			{Mask: 0x0001, Default: 0x0001, Name: "Test Switch", Settings: []input.Setting{
				{Value: 0x0001, Label: "Off"},
				{Value: 0x0000, Label: "On"},
			}},
			{Mask: 0x0002, Default: 0x0000, Name: "Powerup Test", Settings: []input.Setting{
				{Value: 0x0000, Label: "Off"},
				{Value: 0x0002, Label: "On"},
			}},
			{Mask: 0x0004, Default: 0x0004, Name: "Unused 1", Settings: []input.Setting{
				{Value: 0x0004, Label: "Off"},
				{Value: 0x0000, Label: "On"},
			}},
			{Mask: 0x0008, Default: 0x0008, Name: "Unused 2", Settings: []input.Setting{
				{Value: 0x0008, Label: "Off"},
				{Value: 0x0000, Label: "On"},
			}},
			{Mask: 0x0010, Default: 0x0010, Name: "Unused 3", Settings: []input.Setting{
				{Value: 0x0010, Label: "Off"},
				{Value: 0x0000, Label: "On"},
			}},
			{Mask: 0x0020, Default: 0x0020, Name: "Video", Settings: []input.Setting{
				{Value: 0x0000, Label: "Skip"},
				{Value: 0x0020, Label: "Show"},
			}},
			{Mask: 0x0040, Default: 0x0040, Name: "Validator", Settings: []input.Setting{
				{Value: 0x0000, Label: "Installed"},
				{Value: 0x0040, Label: "Not Present"},
			}},
			{Mask: 0x0080, Default: 0x0080, Name: "Players", Settings: []input.Setting{
				{Value: 0x0000, Label: "2"},
				{Value: 0x0080, Label: "4"},
			}},
			{Mask: 0x0300, Default: 0x0300, Name: "Coin Counters", Settings: []input.Setting{
				{Value: 0x0300, Label: "1 Counter, 1 count/coin"},
				{Value: 0x0200, Label: "1 Counter, Totalizing"},
				{Value: 0x0100, Label: "2 Counters, 1 count/coin"},
			}},
			{Mask: 0x0c00, Default: 0x0c00, Name: "Country", Settings: []input.Setting{
				{Value: 0x0c00, Label: "USA"},
				{Value: 0x0800, Label: "French"},
				{Value: 0x0400, Label: "German"},
			}},
			{Mask: 0x7000, Default: 0x7000, Name: "Coinage", Settings: []input.Setting{
				{Value: 0x7000, Label: "1"},
				{Value: 0x3000, Label: "2"},
				{Value: 0x5000, Label: "3"},
				{Value: 0x1000, Label: "4"},
				{Value: 0x6000, Label: "ECA"},
				{Value: 0x0000, Label: "Free Play"},
			}},
			{Mask: 0x8000, Default: 0x0000, Name: "Coinage Source", Settings: []input.Setting{
				{Value: 0x8000, Label: "Dipswitch"},
				{Value: 0x0000, Label: "CMOS"},
			}},
		}},
	}},
	{Name: "nbajamte", Base: "nbajam", Ports: []input.Port{
		{Tag: "IN1", Bits: []input.Bit{
			{Mask: 0x0001, Type: input.Coin1},
			{Mask: 0x0002, Type: input.Coin2},
			{Mask: 0x0004, Type: input.Start1},
			{Mask: 0x0008, Type: input.Tilt},
			{Mask: 0x0010, Type: input.Service, Name: "Test"},
			{Mask: 0x0020, Type: input.Start2},
			{Mask: 0x0040, Type: input.Service1},
			{Mask: 0x0080, Type: input.Coin3},
			{Mask: 0x0100, Type: input.Coin4},
			{Mask: 0x0200, Type: input.Start3},
			{Mask: 0x0400, Type: input.Start4},
			{Mask: 0x0800, Type: input.VolumeDown, Name: "Volume Down"},
			{Mask: 0x1000, Type: input.VolumeUp, Name: "Volume Up"},
			{Mask: 0xe000, Type: input.Unused},
		}},
		{Tag: "DSW", Dips: []input.Dip{
			{Mask: 0x0001, Default: 0x0001, Name: "Test Switch", Settings: []input.Setting{
				{Value: 0x0001, Label: "Off"},
				{Value: 0x0000, Label: "On"},
			}},
			{Mask: 0x0002, Default: 0x0000, Name: "Powerup Test", Settings: []input.Setting{
				{Value: 0x0000, Label: "Off"},
				{Value: 0x0002, Label: "On"},
			}},
			{Mask: 0x0004, Default: 0x0004, Name: "Unused 1", Settings: []input.Setting{
				{Value: 0x0004, Label: "Off"},
				{Value: 0x0000, Label: "On"},
			}},
			{Mask: 0x0008, Default: 0x0008, Name: "Unused 2", Settings: []input.Setting{
				{Value: 0x0008, Label: "Off"},
				{Value: 0x0000, Label: "On"},
			}},
			{Mask: 0x0010, Default: 0x0010, Name: "Unused 3", Settings: []input.Setting{
				{Value: 0x0010, Label: "Off"},
				{Value: 0x0000, Label: "On"},
			}},
			{Mask: 0x0020, Default: 0x0020, Name: "Unused 4", Settings: []input.Setting{
				{Value: 0x0000, Label: "Off"},
				{Value: 0x0020, Label: "On"},
			}},
			{Mask: 0x0040, Default: 0x0040, Name: "Validator", Settings: []input.Setting{
				{Value: 0x0000, Label: "Installed"},
				{Value: 0x0040, Label: "Not Present"},
			}},
			{Mask: 0x0080, Default: 0x0080, Name: "Players", Settings: []input.Setting{
				{Value: 0x0000, Label: "2"},
				{Value: 0x0080, Label: "4"},
			}},
			{Mask: 0x0300, Default: 0x0300, Name: "Coin Counters", Settings: []input.Setting{
				{Value: 0x0300, Label: "1 Counter, 1 count/coin"},
				{Value: 0x0200, Label: "1 Counter, Totalizing"},
				{Value: 0x0100, Label: "2 Counters, 1 count/coin"},
			}},
			{Mask: 0x0c00, Default: 0x0c00, Name: "Country", Settings: []input.Setting{
				{Value: 0x0c00, Label: "USA"},
				{Value: 0x0800, Label: "French"},
				{Value: 0x0400, Label: "German"},
			}},
			{Mask: 0x7000, Default: 0x7000, Name: "Coinage", Settings: []input.Setting{
				{Value: 0x7000, Label: "1"},
				{Value: 0x3000, Label: "2"},
				{Value: 0x5000, Label: "3"},
				{Value: 0x1000, Label: "4"},
				{Value: 0x6000, Label: "ECA"},
				{Value: 0x0000, Label: "Free Play"},
			}},
			{Mask: 0x8000, Default: 0x0000, Name: "Coinage Source", Settings: []input.Setting{
				{Value: 0x8000, Label: "Dipswitch"},
				{Value: 0x0000, Label: "CMOS"},
			}},
		}},
	}},
}
