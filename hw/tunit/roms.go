package tunit

import "tunit/hw/romset"

// adsp2100Size is the size of the ADSP internal memory image at the start
// of the DCS sound region.
const adsp2100Size = 0x4000

// ROMSets returns the ROM sets of the family. Clone sets are declared as
// diffs over the set of their parent variant.
func ROMSets() []*romset.Set { return romSets }

var romSets = []*romset.Set{
	{Name: "mk", Regions: []romset.Region{
		{Tag: "cpu1", Role: romset.Scratch, Length: 0x10},
		{Tag: "cpu2", Role: romset.SoundProgram, Length: 0x50000, Loads: []romset.Load{
			{File: "mks-u3.rom", Offset: 0x010000, Length: 0x40000, CRC: 0xc615844c, SHA1: "5732f9053a5f73b0cc3b0166d7dc4430829d5bc7"},
		}},
		{Tag: "sound1", Role: romset.SoundSample, Length: 0xc0000, Loads: []romset.Load{
			{File: "mks-u12.rom", Offset: 0x000000, Length: 0x40000, CRC: 0x258bd7f9, SHA1: "463890b23f17350fb9b8a85897b0777c45bc2d54"},
			{File: "mks-u13.rom", Offset: 0x040000, Length: 0x40000, CRC: 0x7b7ec3b6, SHA1: "6eec1b90d4a4855f34a7ebfbf93f3358d5627db4"},
		}},
		{Tag: "user1", Role: romset.Program, Length: 0x100000, Width: 16, Dispose: true, Loads: []romset.Load{
			{File: "mkt-uj12.bin", Offset: 0x000000, Length: 0x80000, CRC: 0xf4990bf2, SHA1: "796ec84d37c8d20ca36d6439c14dee626fb8481e", Mode: romset.Byte16},
			{File: "mkt-ug12.bin", Offset: 0x000001, Length: 0x80000, CRC: 0xb06aeac1, SHA1: "f66655eeab67c8cf5e496ae42dbae54d6400586f", Mode: romset.Byte16},
		}},
		{Tag: "gfx1", Role: romset.Graphics, Length: 0xc00000, Dispose: true, Loads: []romset.Load{
			{File: "mkt-ug14.bin", Offset: 0x000000, Length: 0x80000, CRC: 0x9e00834e, SHA1: "2b97b63f52ba1dba6af6ae56c223519a52b2ab9d"},
			{File: "mkt-ug16.bin", Offset: 0x080000, Length: 0x80000, CRC: 0x52c9d1e5, SHA1: "7b1880fca0a11544782b70365c7dd96381ac48e7"},
			{File: "mkt-ug17.bin", Offset: 0x100000, Length: 0x80000, CRC: 0xe34fe253, SHA1: "6b010bee795c1770297c9557ded1fe83425857f2"},
			{File: "mkt-uj14.bin", Offset: 0x300000, Length: 0x80000, CRC: 0xf4b0aaa7, SHA1: "4cc6ee34c89e3cde325ad24b29511f70ae6a5a72"},
			{File: "mkt-uj16.bin", Offset: 0x380000, Length: 0x80000, CRC: 0xc94c58cf, SHA1: "974d75667eee779497325d5be8df937f15417edf"},
			{File: "mkt-uj17.bin", Offset: 0x400000, Length: 0x80000, CRC: 0xa56e12f5, SHA1: "5db637c4710990cd06bb0069714b19621532e431"},
			{File: "mkt-ug19.bin", Offset: 0x600000, Length: 0x80000, CRC: 0x2d8c7ba1, SHA1: "f891d6eb618dbf3e77f02e0f93da216e20571905"},
			{File: "mkt-ug20.bin", Offset: 0x680000, Length: 0x80000, CRC: 0x2f7e55d3, SHA1: "bda6892ee6fcb46959e4d0892bbe7d9fc6072dd3"},
			{File: "mkt-ug22.bin", Offset: 0x700000, Length: 0x80000, CRC: 0xb537bb4e, SHA1: "05a447deee2e89b49bdb3ca2161a021d7ec5f11e"},
			{File: "mkt-uj19.bin", Offset: 0x900000, Length: 0x80000, CRC: 0x33b9b7a4, SHA1: "e8ceca4c049e1f55d480a03ff793b595bd04d344"},
			{File: "mkt-uj20.bin", Offset: 0x980000, Length: 0x80000, CRC: 0xeae96df0, SHA1: "b40532312ba61e4065abfd733dd0c93eecad48e9"},
			{File: "mkt-uj22.bin", Offset: 0xa00000, Length: 0x80000, CRC: 0x5e12523b, SHA1: "468f93ef9bb6addb45c1c939d24b6511f255426a"},
		}},
	}},
	{Name: "mkr4", Regions: []romset.Region{
		{Tag: "user1", Loads: []romset.Load{
			{File: "mkr4uj12.bin", Offset: 0x000000, Length: 0x80000, CRC: 0xa1b6635a, SHA1: "22d396cc9c1e3a14cb01d196de6d3e864f7afc55", Mode: romset.Byte16},
			{File: "mkr4ug12.bin", Offset: 0x000001, Length: 0x80000, CRC: 0xaa94f7ea, SHA1: "bd8957bf52f73b49767cc78fec84ed1109a37701", Mode: romset.Byte16},
		}},
	}},
	{Name: "mk2", Regions: []romset.Region{
		{Tag: "cpu1", Role: romset.Scratch, Length: 0x10},
		{Tag: "cpu2", Role: romset.SoundProgram, Length: adsp2100Size + 0x800000, Loads: []romset.Load{
			{File: "su2.l1", Offset: adsp2100Size + 0x000000, Length: 0x80000, CRC: 0x5f23d71d, SHA1: "54c2afef243759e0f3dbe2907edbc4302f5c8bad", Reload: []uint32{adsp2100Size + 0x080000}},
			{File: "su3.l1", Offset: adsp2100Size + 0x100000, Length: 0x80000, CRC: 0xd6d92bf9, SHA1: "397351c6b707f2595e36360471015f9fa494e894", Reload: []uint32{adsp2100Size + 0x180000}},
			{File: "su4.l1", Offset: adsp2100Size + 0x200000, Length: 0x80000, CRC: 0xeebc8e0f, SHA1: "705ab63ff7672a4857d546afda6dca4973cce1ad", Reload: []uint32{adsp2100Size + 0x280000}},
			{File: "su5.l1", Offset: adsp2100Size + 0x300000, Length: 0x80000, CRC: 0x2b0b7961, SHA1: "1cdc64aab74d14afbd8c3531e3d0bd49271a281f", Reload: []uint32{adsp2100Size + 0x380000}},
			{File: "su6.l1", Offset: adsp2100Size + 0x400000, Length: 0x80000, CRC: 0xf694b27f, SHA1: "d43e38a124665f49ebb4ffc5a55e8f19a1a64686", Reload: []uint32{adsp2100Size + 0x480000}},
			{File: "su7.l1", Offset: adsp2100Size + 0x500000, Length: 0x80000, CRC: 0x20387e0a, SHA1: "505d05173b2a1f1ee3ebc2898ccd3a95c98dd04a", Reload: []uint32{adsp2100Size + 0x580000}},
		}},
		{Tag: "user1", Role: romset.Program, Length: 0x100000, Width: 16, Dispose: true, Loads: []romset.Load{
			{File: "uj12.l31", Offset: 0x000000, Length: 0x80000, CRC: 0xcf100a75, SHA1: "c5cf739fdb08e311f47794eb93a8d34d4bc11cde", Mode: romset.Byte16},
			{File: "ug12.l31", Offset: 0x000001, Length: 0x80000, CRC: 0x582c7dfd, SHA1: "f32bd1213ce70f74caa97a2047815cf4baee56b5", Mode: romset.Byte16},
		}},
		{Tag: "gfx1", Role: romset.Graphics, Length: 0xc00000, Dispose: true, Loads: []romset.Load{
			{File: "ug14-vid", Offset: 0x000000, Length: 0x100000, CRC: 0x01e73af6, SHA1: "6598cfd704cc92a7f358a0e1f1c973ab79dcc493"},
			{File: "ug16-vid", Offset: 0x100000, Length: 0x100000, CRC: 0x8ba6ae18, SHA1: "465fe907de4a1e502180c4e41642998dd3abc8e6"},
			{File: "ug17-vid", Offset: 0x200000, Length: 0x100000, CRC: 0x937d8620, SHA1: "8b9f80a460b124a747a6d1495b53f01f580e28f1"},
			{File: "uj14-vid", Offset: 0x300000, Length: 0x100000, CRC: 0xd4985cbb, SHA1: "367865da7efae38d83de3c0868d02a705177ae63"},
			{File: "uj16-vid", Offset: 0x400000, Length: 0x100000, CRC: 0x39d885b4, SHA1: "2251826d247c3c6df421124718401fb35a672f83"},
			{File: "uj17-vid", Offset: 0x500000, Length: 0x100000, CRC: 0x218de160, SHA1: "87aea173720d2a33d8183903f4fe8ba1d47e3348"},
			{File: "ug19-vid", Offset: 0x600000, Length: 0x100000, CRC: 0xfec137be, SHA1: "f11ecb8a7993f5c4f4449564b4911f69bd6e9bf8"},
			{File: "ug20-vid", Offset: 0x700000, Length: 0x100000, CRC: 0x809118c1, SHA1: "86153e648834c749e34573151cd4fee403a81962"},
			{File: "ug22-vid", Offset: 0x800000, Length: 0x100000, CRC: 0x154d53b1, SHA1: "58ff0aa59101f40a9a3b5fbae1c904d0b0b31612"},
			{File: "uj19-vid", Offset: 0x900000, Length: 0x100000, CRC: 0x2d763156, SHA1: "06536006da49ab5fb6b75b25f801b83fad000ff5"},
			{File: "uj20-vid", Offset: 0xa00000, Length: 0x100000, CRC: 0xb96824f0, SHA1: "d42b122f9a57da330192abc7e5f97abc4065d718"},
			{File: "uj22-vid", Offset: 0xb00000, Length: 0x100000, CRC: 0x8891d785, SHA1: "fd460df1ef8f4306ea42f7dc41488a80fd2c8f53"},
		}},
	}},
	{Name: "mk2r32", Regions: []romset.Region{
		{Tag: "user1", Loads: []romset.Load{
			{File: "uj12.l32", Offset: 0x000000, Length: 0x80000, CRC: 0x43f773a6, SHA1: "a97b75bac2793f99738abcbd4054f2b860aff574", Mode: romset.Byte16},
			{File: "ug12.l32", Offset: 0x000001, Length: 0x80000, CRC: 0xdcde9619, SHA1: "72b39bd68eff5938cd87d3388074172a07bda816", Mode: romset.Byte16},
		}},
	}},
	{Name: "mk2r21", Regions: []romset.Region{
		{Tag: "user1", Loads: []romset.Load{
			{File: "uj12.121", Offset: 0x000000, Length: 0x80000, CRC: 0xd6a35699, SHA1: "17feee7886108d6f946bf04669479d35c2edac76", Mode: romset.Byte16},
			{File: "ug12.121", Offset: 0x000001, Length: 0x80000, CRC: 0xaeb703ff, SHA1: "e94cd9e6feb45e3de85661ca12452aff6e14d3ae", Mode: romset.Byte16},
		}},
	}},
	{Name: "mk2r14", Regions: []romset.Region{
		{Tag: "user1", Loads: []romset.Load{
			{File: "uj12.l14", Offset: 0x000000, Length: 0x80000, CRC: 0x6d43bc6d, SHA1: "578ea9c60fa94689d6ae583b86769cd56d8db311", Mode: romset.Byte16},
			{File: "ug12.l14", Offset: 0x000001, Length: 0x80000, CRC: 0x42b0da21, SHA1: "94ef25b04c35b4c26b692c2c3c5f68ba747bef49", Mode: romset.Byte16},
		}},
	}},
	{Name: "mk2r42", Regions: []romset.Region{
		{Tag: "user1", Loads: []romset.Load{
			{File: "mk242j12.bin", Offset: 0x000000, Length: 0x80000, CRC: 0xc7fb1525, SHA1: "350be1a6f6da3a6b42764cfceae196696482def2", Mode: romset.Byte16},
			{File: "mk242g12.bin", Offset: 0x000001, Length: 0x80000, CRC: 0x443d0e0a, SHA1: "20e69c266cda59be92d7cd6423f6e03ad65226eb", Mode: romset.Byte16},
		}},
	}},
	{Name: "mk2r91", Regions: []romset.Region{
		{Tag: "user1", Loads: []romset.Load{
			{File: "uj12.l91", Offset: 0x000000, Length: 0x80000, CRC: 0x41953903, SHA1: "f72f92beb32e724d37e5f951b24539902dc16a9f", Mode: romset.Byte16},
			{File: "ug12.l91", Offset: 0x000001, Length: 0x80000, CRC: 0xc07f745a, SHA1: "049a18bc162274c897cae695032f32c851e57330", Mode: romset.Byte16},
		}},
	}},
	{Name: "mk2chal", Regions: []romset.Region{
		{Tag: "user1", Loads: []romset.Load{
			{File: "uj12.chl", Offset: 0x000000, Length: 0x80000, CRC: 0x2d5c04e6, SHA1: "85947876319c86bdcdeccda99ae1ddbcfb212484", Mode: romset.Byte16},
			{File: "ug12.chl", Offset: 0x000001, Length: 0x80000, CRC: 0x3e7a4bad, SHA1: "9a8ad99e09badcea7f2bcf80a649c96a883a0463", Mode: romset.Byte16},
		}},
	}},
	{Name: "nbajam", Regions: []romset.Region{
		{Tag: "cpu1", Role: romset.Scratch, Length: 0x10},
		{Tag: "cpu2", Role: romset.SoundProgram, Length: 0x50000, Loads: []romset.Load{
			{File: "nbau3.bin", Offset: 0x010000, Length: 0x20000, CRC: 0x3a3ea480, SHA1: "d12a45cba5c35f046b176661d7877fa4fd0e6c13", Reload: []uint32{0x030000}},
		}},
		{Tag: "sound1", Role: romset.SoundSample, Length: 0x1c0000, Loads: []romset.Load{
			{File: "nbau12.bin", Offset: 0x000000, Length: 0x80000, CRC: 0xb94847f1, SHA1: "e7efa0a379bfa91fe4ffb75f07a5dfbfde9a96b4"},
			{File: "nbau13.bin", Offset: 0x080000, Length: 0x80000, CRC: 0xb6fe24bd, SHA1: "f70f75b5570a2b368ebc74d2a7d264c618940430"},
		}},
		{Tag: "user1", Role: romset.Program, Length: 0x100000, Width: 16, Dispose: true, Loads: []romset.Load{
			{File: "nbauj12.bin", Offset: 0x000000, Length: 0x80000, CRC: 0xb93e271c, SHA1: "b0e9f055376a4a4cd1115a81f71c933903c251b1", Mode: romset.Byte16},
			{File: "nbaug12.bin", Offset: 0x000001, Length: 0x80000, CRC: 0x407d3390, SHA1: "a319bc890d94310e44fe2ec98bfc95665a662701", Mode: romset.Byte16},
		}},
		{Tag: "gfx1", Role: romset.Graphics, Length: 0xc00000, Dispose: true, Loads: []romset.Load{
			{File: "nbaug14.bin", Offset: 0x000000, Length: 0x80000, CRC: 0x04bb9f64, SHA1: "9e1a8c37e14cb6fe67f4aa3caa9022f356f1ca64"},
			{File: "nbaug16.bin", Offset: 0x080000, Length: 0x80000, CRC: 0x8591c572, SHA1: "237bab2e93abf438a84be3603505db5de59922af"},
			{File: "nbaug17.bin", Offset: 0x100000, Length: 0x80000, CRC: 0x6f921886, SHA1: "72542249ca6602dc4816952765c1810f064ff394"},
			{File: "nbaug18.bin", Offset: 0x180000, Length: 0x80000, CRC: 0x5162d3d6, SHA1: "14d377977510b7793e4006a7a5089dbfd785d7d1"},
			{File: "nbauj14.bin", Offset: 0x300000, Length: 0x80000, CRC: 0xb34b7af3, SHA1: "0abb74d2f414bc9da0380a81beb134f3a87c1a0a"},
			{File: "nbauj16.bin", Offset: 0x380000, Length: 0x80000, CRC: 0xd2e554f1, SHA1: "139aa39bd48b8605058ece188f9f5e6793561fcb"},
			{File: "nbauj17.bin", Offset: 0x400000, Length: 0x80000, CRC: 0xb2e14981, SHA1: "5cec9b7fcaa6d0ce5bff689541fc98db435c5b5f"},
			{File: "nbauj18.bin", Offset: 0x480000, Length: 0x80000, CRC: 0xfdee0037, SHA1: "3bcc740f4bdb3236822cd6e7ed06241804351cca"},
			{File: "nbaug19.bin", Offset: 0x600000, Length: 0x80000, CRC: 0xa8f22fbb, SHA1: "514208a9d6d0c8c2d7847cc02d4387eac90be659"},
			{File: "nbaug20.bin", Offset: 0x680000, Length: 0x80000, CRC: 0x44fd6221, SHA1: "1d6754bf2c24950080523f66b77407931babba29"},
			{File: "nbaug22.bin", Offset: 0x700000, Length: 0x80000, CRC: 0xab05ed89, SHA1: "4153d098fbaeac963d93f26dcd9d8bc33a48a734"},
			{File: "nbaug23.bin", Offset: 0x780000, Length: 0x80000, CRC: 0x7b934c7a, SHA1: "a6992fb3c50429ac4fa15bd91612ae0c0b8f961d"},
			{File: "nbauj19.bin", Offset: 0x900000, Length: 0x80000, CRC: 0x8130a8a2, SHA1: "f23f124024285d07d8cf822817b62e42c38b82db"},
			{File: "nbauj20.bin", Offset: 0x980000, Length: 0x80000, CRC: 0xf9cebbb6, SHA1: "6202e490bc5658bd0741422f841540fcd037cfee"},
			{File: "nbauj22.bin", Offset: 0xa00000, Length: 0x80000, CRC: 0x59a95878, SHA1: "b95165987853f164842ab2b5895ea95484a1d78b"},
			{File: "nbauj23.bin", Offset: 0xa80000, Length: 0x80000, CRC: 0x427d2eee, SHA1: "4985e3dd9c9e1bedd5a900958bf549656debd494"},
		}},
	}},
	{Name: "nbajamr2", Regions: []romset.Region{
		{Tag: "user1", Loads: []romset.Load{
			{File: "jam2uj12.bin", Offset: 0x000000, Length: 0x80000, CRC: 0x0fe80b36, SHA1: "fe6b21dc9b393b25c511b2914b568fa92301d749", Mode: romset.Byte16},
			{File: "jam2ug12.bin", Offset: 0x000001, Length: 0x80000, CRC: 0x5d106315, SHA1: "e2cddd9ed6771e77711e3a4f25fe2d07712d954e", Mode: romset.Byte16},
		}},
	}},
	{Name: "nbajamte", Regions: []romset.Region{
		{Tag: "cpu2", Loads: []romset.Load{
			{File: "te-u3.bin", Offset: 0x010000, Length: 0x20000, CRC: 0xd4551195, SHA1: "e8908fbe4339fb8c93f7e74113dfd25dda1667ea", Reload: []uint32{0x030000}},
		}},
		{Tag: "sound1", Loads: []romset.Load{
			{File: "te-u12.bin", Offset: 0x000000, Length: 0x80000, CRC: 0x4fac97bc, SHA1: "bd88d8c3edab0e35ad9f9350bcbaa17cda61d87a"},
			{File: "te-u13.bin", Offset: 0x080000, Length: 0x80000, CRC: 0x6f27b202, SHA1: "c1f0db15624d1e7102ce9fd1db49ccf86e8611d6"},
		}},
		{Tag: "user1", Loads: []romset.Load{
			{File: "te-uj12.l4", Offset: 0x000000, Length: 0x80000, CRC: 0xd7c21bc4, SHA1: "e05f0299b955500df6a08b1c0b24b932a9cdfa6a", Mode: romset.Byte16},
			{File: "te-ug12.l4", Offset: 0x000001, Length: 0x80000, CRC: 0x7ad49229, SHA1: "e9ceedb0e620809d8a4d42087d806aa296a4cd59", Mode: romset.Byte16},
		}},
		{Tag: "gfx1", Loads: []romset.Load{
			{File: "te-ug16.bin", Offset: 0x080000, Length: 0x80000, CRC: 0xc7ce74d0, SHA1: "93861cd909e0f28ed112096d6f9fc57d0d31c57c"},
			{File: "te-ug17.bin", Offset: 0x100000, Length: 0x80000, CRC: 0x9401be62, SHA1: "597413a8a1eb66a7ad89af2f548fa3062e5e8efb"},
			{File: "te-ug18.bin", Offset: 0x180000, Length: 0x80000, CRC: 0x6fd08f57, SHA1: "5b7031dffc88374c5bfdf3021aa01ec4e28d0631"},
			{File: "te-uj16.bin", Offset: 0x380000, Length: 0x80000, CRC: 0x905ad88b, SHA1: "24c336ccc0e2ac0ee96a34ad6fe4aa7464de0009"},
			{File: "te-uj17.bin", Offset: 0x400000, Length: 0x80000, CRC: 0x8a852b9e, SHA1: "604c7f4305887e9505320630027765ea76607c58"},
			{File: "te-uj18.bin", Offset: 0x480000, Length: 0x80000, CRC: 0x4eb73c26, SHA1: "693bf45f777da8e55b7bcd8699ea5bd711964941"},
			{File: "te-ug20.bin", Offset: 0x680000, Length: 0x80000, CRC: 0x8a48728c, SHA1: "3684099b4934b027336c319c77d9e0710b8c22dc"},
			{File: "te-ug22.bin", Offset: 0x700000, Length: 0x80000, CRC: 0x3b05133b, SHA1: "f6067abb92b8751afe7352a4f1b1a22c9528002b"},
			{File: "te-ug23.bin", Offset: 0x780000, Length: 0x80000, CRC: 0x854f73bc, SHA1: "242cc8ce28711f6f0787524a1070eb4b0956e6ae"},
			{File: "te-uj20.bin", Offset: 0x980000, Length: 0x80000, CRC: 0xbf263d61, SHA1: "b5b59e8df55f8030eff068c1d8b07dad8521bf5d"},
			{File: "te-uj22.bin", Offset: 0xa00000, Length: 0x80000, CRC: 0x39791051, SHA1: "7aa02500ddacd31fca04044a22a38f36452ca300"},
			{File: "te-uj23.bin", Offset: 0xa80000, Length: 0x80000, CRC: 0xf8c30998, SHA1: "33e2f982d74e9f3686b1f4a8172c49fb8b604cf5"},
		}},
	}},
	{Name: "nbajamt1", Regions: []romset.Region{
		{Tag: "cpu2", Loads: []romset.Load{
			{File: "te-u3.bin", Offset: 0x010000, Length: 0x20000, CRC: 0xd4551195, SHA1: "e8908fbe4339fb8c93f7e74113dfd25dda1667ea", Reload: []uint32{0x030000}},
		}},
		{Tag: "sound1", Loads: []romset.Load{
			{File: "te-u12.bin", Offset: 0x000000, Length: 0x80000, CRC: 0x4fac97bc, SHA1: "bd88d8c3edab0e35ad9f9350bcbaa17cda61d87a"},
			{File: "te-u13.bin", Offset: 0x080000, Length: 0x80000, CRC: 0x6f27b202, SHA1: "c1f0db15624d1e7102ce9fd1db49ccf86e8611d6"},
		}},
		{Tag: "user1", Loads: []romset.Load{
			{File: "te-uj12.l1", Offset: 0x000000, Length: 0x80000, CRC: 0xa9f555ad, SHA1: "34f5fc1b003ef8acbb2b38fbacd58d018d20ab1b", Mode: romset.Byte16},
			{File: "te-ug12.l1", Offset: 0x000001, Length: 0x80000, CRC: 0xbd4579b5, SHA1: "c893cff931f1e60a1d0d29d2719f514d92fb3490", Mode: romset.Byte16},
		}},
		{Tag: "gfx1", Loads: []romset.Load{
			{File: "te-ug16.bin", Offset: 0x080000, Length: 0x80000, CRC: 0xc7ce74d0, SHA1: "93861cd909e0f28ed112096d6f9fc57d0d31c57c"},
			{File: "te-ug17.bin", Offset: 0x100000, Length: 0x80000, CRC: 0x9401be62, SHA1: "597413a8a1eb66a7ad89af2f548fa3062e5e8efb"},
			{File: "te-ug18.bin", Offset: 0x180000, Length: 0x80000, CRC: 0x6fd08f57, SHA1: "5b7031dffc88374c5bfdf3021aa01ec4e28d0631"},
			{File: "te-uj16.bin", Offset: 0x380000, Length: 0x80000, CRC: 0x905ad88b, SHA1: "24c336ccc0e2ac0ee96a34ad6fe4aa7464de0009"},
			{File: "te-uj17.bin", Offset: 0x400000, Length: 0x80000, CRC: 0x8a852b9e, SHA1: "604c7f4305887e9505320630027765ea76607c58"},
			{File: "te-uj18.bin", Offset: 0x480000, Length: 0x80000, CRC: 0x4eb73c26, SHA1: "693bf45f777da8e55b7bcd8699ea5bd711964941"},
			{File: "te-ug20.bin", Offset: 0x680000, Length: 0x80000, CRC: 0x8a48728c, SHA1: "3684099b4934b027336c319c77d9e0710b8c22dc"},
			{File: "te-ug22.bin", Offset: 0x700000, Length: 0x80000, CRC: 0x3b05133b, SHA1: "f6067abb92b8751afe7352a4f1b1a22c9528002b"},
			{File: "te-ug23.bin", Offset: 0x780000, Length: 0x80000, CRC: 0x854f73bc, SHA1: "242cc8ce28711f6f0787524a1070eb4b0956e6ae"},
			{File: "te-uj20.bin", Offset: 0x980000, Length: 0x80000, CRC: 0xbf263d61, SHA1: "b5b59e8df55f8030eff068c1d8b07dad8521bf5d"},
			{File: "te-uj22.bin", Offset: 0xa00000, Length: 0x80000, CRC: 0x39791051, SHA1: "7aa02500ddacd31fca04044a22a38f36452ca300"},
			{File: "te-uj23.bin", Offset: 0xa80000, Length: 0x80000, CRC: 0xf8c30998, SHA1: "33e2f982d74e9f3686b1f4a8172c49fb8b604cf5"},
		}},
	}},
	{Name: "nbajamt2", Regions: []romset.Region{
		{Tag: "cpu2", Loads: []romset.Load{
			{File: "te-u3.bin", Offset: 0x010000, Length: 0x20000, CRC: 0xd4551195, SHA1: "e8908fbe4339fb8c93f7e74113dfd25dda1667ea", Reload: []uint32{0x030000}},
		}},
		{Tag: "sound1", Loads: []romset.Load{
			{File: "te-u12.bin", Offset: 0x000000, Length: 0x80000, CRC: 0x4fac97bc, SHA1: "bd88d8c3edab0e35ad9f9350bcbaa17cda61d87a"},
			{File: "te-u13.bin", Offset: 0x080000, Length: 0x80000, CRC: 0x6f27b202, SHA1: "c1f0db15624d1e7102ce9fd1db49ccf86e8611d6"},
		}},
		{Tag: "user1", Loads: []romset.Load{
			{File: "te-uj12.l2", Offset: 0x000000, Length: 0x80000, CRC: 0xeaa6fb32, SHA1: "8c8c0c6ace2b98679d7fe90e1f9284bdf0e14eaf", Mode: romset.Byte16},
			{File: "te-ug12.l2", Offset: 0x000001, Length: 0x80000, CRC: 0x5a694d9a, SHA1: "fb74e4242d9adba03f24a81451ea06e8d9b4af96", Mode: romset.Byte16},
		}},
		{Tag: "gfx1", Loads: []romset.Load{
			{File: "te-ug16.bin", Offset: 0x080000, Length: 0x80000, CRC: 0xc7ce74d0, SHA1: "93861cd909e0f28ed112096d6f9fc57d0d31c57c"},
			{File: "te-ug17.bin", Offset: 0x100000, Length: 0x80000, CRC: 0x9401be62, SHA1: "597413a8a1eb66a7ad89af2f548fa3062e5e8efb"},
			{File: "te-ug18.bin", Offset: 0x180000, Length: 0x80000, CRC: 0x6fd08f57, SHA1: "5b7031dffc88374c5bfdf3021aa01ec4e28d0631"},
			{File: "te-uj16.bin", Offset: 0x380000, Length: 0x80000, CRC: 0x905ad88b, SHA1: "24c336ccc0e2ac0ee96a34ad6fe4aa7464de0009"},
			{File: "te-uj17.bin", Offset: 0x400000, Length: 0x80000, CRC: 0x8a852b9e, SHA1: "604c7f4305887e9505320630027765ea76607c58"},
			{File: "te-uj18.bin", Offset: 0x480000, Length: 0x80000, CRC: 0x4eb73c26, SHA1: "693bf45f777da8e55b7bcd8699ea5bd711964941"},
			{File: "te-ug20.bin", Offset: 0x680000, Length: 0x80000, CRC: 0x8a48728c, SHA1: "3684099b4934b027336c319c77d9e0710b8c22dc"},
			{File: "te-ug22.bin", Offset: 0x700000, Length: 0x80000, CRC: 0x3b05133b, SHA1: "f6067abb92b8751afe7352a4f1b1a22c9528002b"},
			{File: "te-ug23.bin", Offset: 0x780000, Length: 0x80000, CRC: 0x854f73bc, SHA1: "242cc8ce28711f6f0787524a1070eb4b0956e6ae"},
			{File: "te-uj20.bin", Offset: 0x980000, Length: 0x80000, CRC: 0xbf263d61, SHA1: "b5b59e8df55f8030eff068c1d8b07dad8521bf5d"},
			{File: "te-uj22.bin", Offset: 0xa00000, Length: 0x80000, CRC: 0x39791051, SHA1: "7aa02500ddacd31fca04044a22a38f36452ca300"},
			{File: "te-uj23.bin", Offset: 0xa80000, Length: 0x80000, CRC: 0xf8c30998, SHA1: "33e2f982d74e9f3686b1f4a8172c49fb8b604cf5"},
		}},
	}},
	{Name: "nbajamt3", Regions: []romset.Region{
		{Tag: "cpu2", Loads: []romset.Load{
			{File: "te-u3.bin", Offset: 0x010000, Length: 0x20000, CRC: 0xd4551195, SHA1: "e8908fbe4339fb8c93f7e74113dfd25dda1667ea", Reload: []uint32{0x030000}},
		}},
		{Tag: "sound1", Loads: []romset.Load{
			{File: "te-u12.bin", Offset: 0x000000, Length: 0x80000, CRC: 0x4fac97bc, SHA1: "bd88d8c3edab0e35ad9f9350bcbaa17cda61d87a"},
			{File: "te-u13.bin", Offset: 0x080000, Length: 0x80000, CRC: 0x6f27b202, SHA1: "c1f0db15624d1e7102ce9fd1db49ccf86e8611d6"},
		}},
		{Tag: "user1", Loads: []romset.Load{
			{File: "te-uj12.l3", Offset: 0x000000, Length: 0x80000, CRC: 0x8fdf77b4, SHA1: "1a8a178b19d0b8e7a5fd2ddf373a4279321440d0", Mode: romset.Byte16},
			{File: "te-ug12.l3", Offset: 0x000001, Length: 0x80000, CRC: 0x656579ed, SHA1: "b038fdc814ebc8d203724fdb2f7501d40f1dc21f", Mode: romset.Byte16},
		}},
		{Tag: "gfx1", Loads: []romset.Load{
			{File: "te-ug16.bin", Offset: 0x080000, Length: 0x80000, CRC: 0xc7ce74d0, SHA1: "93861cd909e0f28ed112096d6f9fc57d0d31c57c"},
			{File: "te-ug17.bin", Offset: 0x100000, Length: 0x80000, CRC: 0x9401be62, SHA1: "597413a8a1eb66a7ad89af2f548fa3062e5e8efb"},
			{File: "te-ug18.bin", Offset: 0x180000, Length: 0x80000, CRC: 0x6fd08f57, SHA1: "5b7031dffc88374c5bfdf3021aa01ec4e28d0631"},
			{File: "te-uj16.bin", Offset: 0x380000, Length: 0x80000, CRC: 0x905ad88b, SHA1: "24c336ccc0e2ac0ee96a34ad6fe4aa7464de0009"},
			{File: "te-uj17.bin", Offset: 0x400000, Length: 0x80000, CRC: 0x8a852b9e, SHA1: "604c7f4305887e9505320630027765ea76607c58"},
			{File: "te-uj18.bin", Offset: 0x480000, Length: 0x80000, CRC: 0x4eb73c26, SHA1: "693bf45f777da8e55b7bcd8699ea5bd711964941"},
			{File: "te-ug20.bin", Offset: 0x680000, Length: 0x80000, CRC: 0x8a48728c, SHA1: "3684099b4934b027336c319c77d9e0710b8c22dc"},
			{File: "te-ug22.bin", Offset: 0x700000, Length: 0x80000, CRC: 0x3b05133b, SHA1: "f6067abb92b8751afe7352a4f1b1a22c9528002b"},
			{File: "te-ug23.bin", Offset: 0x780000, Length: 0x80000, CRC: 0x854f73bc, SHA1: "242cc8ce28711f6f0787524a1070eb4b0956e6ae"},
			{File: "te-uj20.bin", Offset: 0x980000, Length: 0x80000, CRC: 0xbf263d61, SHA1: "b5b59e8df55f8030eff068c1d8b07dad8521bf5d"},
			{File: "te-uj22.bin", Offset: 0xa00000, Length: 0x80000, CRC: 0x39791051, SHA1: "7aa02500ddacd31fca04044a22a38f36452ca300"},
			{File: "te-uj23.bin", Offset: 0xa80000, Length: 0x80000, CRC: 0xf8c30998, SHA1: "33e2f982d74e9f3686b1f4a8172c49fb8b604cf5"},
		}},
	}},
	{Name: "jdreddp", Regions: []romset.Region{
		{Tag: "cpu1", Role: romset.Scratch, Length: 0x10},
		{Tag: "cpu2", Role: romset.SoundProgram, Length: 0x50000, Loads: []romset.Load{
			{File: "jd_u3.rom", Offset: 0x010000, Length: 0x20000, CRC: 0x6154d108, SHA1: "54328455ec22ba815de85aa3bfe6405353c64f5c", Reload: []uint32{0x030000}},
		}},
		{Tag: "sound1", Role: romset.SoundSample, Length: 0x1c0000, Loads: []romset.Load{
			{File: "jd_u12.rom", Offset: 0x000000, Length: 0x80000, CRC: 0xef32f202, SHA1: "16aea085e63496dec259291de1a64fbeab52f039"},
			{File: "jd_u13.rom", Offset: 0x080000, Length: 0x80000, CRC: 0x3dc70473, SHA1: "a3d7210301ff0579889009a075092115d9bf0600"},
		}},
		{Tag: "user1", Role: romset.Program, Length: 0x100000, Width: 16, Dispose: true, Loads: []romset.Load{
			{File: "jd_uj12.rom", Offset: 0x000000, Length: 0x80000, CRC: 0x7e5c8d5a, SHA1: "65c0e887fea01846426067adfc4cf60dce4a1e24", Mode: romset.Byte16},
			{File: "jd_ug12.rom", Offset: 0x000001, Length: 0x80000, CRC: 0xa16b8a4a, SHA1: "77abb31e7cb3b66c63ef7c1874d8544ae9a02667", Mode: romset.Byte16},
		}},
		{Tag: "gfx1", Role: romset.Graphics, Length: 0xc00000, Dispose: true, Loads: []romset.Load{
			{File: "jd_ug14.rom", Offset: 0x000000, Length: 0x80000, CRC: 0x468484d7, SHA1: "87e3b87051e3afff097333af90efa0eb4dd61a35"},
			{File: "jd_ug16.rom", Offset: 0x080000, Length: 0x80000, CRC: 0x1d7f12b6, SHA1: "beb864615a6c554097377a2f2b6dfe361c1fb084"},
			{File: "jd_ug17.rom", Offset: 0x100000, Length: 0x80000, CRC: 0xb6d83d74, SHA1: "e0e71f691af5b55fb4153a6b80d3055641cb7cf4"},
			{File: "jd_ug18.rom", Offset: 0x180000, Length: 0x80000, CRC: 0xc8a45e01, SHA1: "6d63a977c30d5f421baf48db55da90c75032a75f"},
			{File: "jd_uj14.rom", Offset: 0x300000, Length: 0x80000, CRC: 0xfe6ec0ec, SHA1: "3e3b1774e1c5cf6629fbd3aeff36cadff1adfbf9"},
			{File: "jd_uj16.rom", Offset: 0x380000, Length: 0x80000, CRC: 0x31d4a71b, SHA1: "703448956968f1913e5755a6aedf0f7d15ea4a4e"},
			{File: "jd_uj17.rom", Offset: 0x400000, Length: 0x80000, CRC: 0xddc76f0b, SHA1: "8f3091c6a5ec1488fcd296e75bbd0572f1a4485c"},
			{File: "jd_uj18.rom", Offset: 0x480000, Length: 0x80000, CRC: 0x3e16e7a9, SHA1: "f517d42594225b06d70404f29e44dc144ad87a72"},
			{File: "jd_ug19.rom", Offset: 0x600000, Length: 0x80000, CRC: 0xe076c08e, SHA1: "9b52470feac66b258e62e53dfd6a6a74c1e47ac1"},
			{File: "jd_ug20.rom", Offset: 0x680000, Length: 0x80000, CRC: 0x7b8c370a, SHA1: "e6562782519610447657d0850481b1f9fd7c08b3"},
			{File: "jd_ug22.rom", Offset: 0x700000, Length: 0x80000, CRC: 0x6705d5b3, SHA1: "da304ea33cd20c118b97147fe603237fe5940732"},
			{File: "jd_ug23.rom", Offset: 0x780000, Length: 0x80000, CRC: 0x0c9edbc4, SHA1: "bb3926a992efd1923d64c5bc615dac39867f426d"},
			{File: "jd_uj19.rom", Offset: 0x900000, Length: 0x80000, CRC: 0xbd8cffe0, SHA1: "7690bfa82ab5c2c102dc5c6e60628f341b83a77b"},
			{File: "jd_uj20.rom", Offset: 0x980000, Length: 0x80000, CRC: 0x8fc7bfb9, SHA1: "c3c31ea641a6e304b060a7938e2ac473db8a7aab"},
			{File: "jd_uj22.rom", Offset: 0xa00000, Length: 0x80000, CRC: 0x7438295e, SHA1: "dbc28a9273897d50abf8e7bebe0753949365eb42"},
			{File: "jd_uj23.rom", Offset: 0xa80000, Length: 0x80000, CRC: 0x86ea157d, SHA1: "9189e07abc73b601a26ae8aaf6d49ed87d1befca"},
		}},
	}},
}
