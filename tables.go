package photocd

// Lookup tables for the micro CMM. Index range is 0..1388, matching the
// scaled integer pixel values produced by the YCC to RGB stage. The
// tables were generated once from the PhotoYCC transfer function, the
// CCIR 709 to sRGB recompression curve and the three output formats,
// and are kept as static data so decode needs no floating point setup.

const lutSize = 1389

// toLinearLight decodes the PhotoYCC nonlinear transfer into 16-bit
// linear light.
var toLinearLight = [lutSize]uint16{
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0001, 0x0001, 0x0001, 0x0001, 0x0001,
	0x0001, 0x0002, 0x0002, 0x0002, 0x0002, 0x0002, 0x0002, 0x0003, 0x0003, 0x0003, 0x0003, 0x0003,
	0x0003, 0x0004, 0x0004, 0x0004, 0x0004, 0x0004, 0x0004, 0x0005, 0x0005, 0x0005, 0x0005, 0x0005,
	0x0005, 0x0005, 0x0006, 0x0006, 0x0006, 0x0006, 0x0006, 0x0006, 0x0007, 0x0007, 0x0007, 0x0007,
	0x0007, 0x0007, 0x0008, 0x0008, 0x0008, 0x0008, 0x0008, 0x0008, 0x0009, 0x0009, 0x0009, 0x0009,
	0x0009, 0x0009, 0x000a, 0x000a, 0x000a, 0x000a, 0x000a, 0x000a, 0x000a, 0x000b, 0x000b, 0x000b,
	0x000b, 0x000b, 0x000b, 0x000c, 0x000c, 0x000c, 0x000c, 0x000c, 0x000c, 0x000d, 0x000d, 0x000d,
	0x000d, 0x000d, 0x000d, 0x000e, 0x000e, 0x000e, 0x000e, 0x000e, 0x000e, 0x000f, 0x000f, 0x000f,
	0x000f, 0x000f, 0x000f, 0x0010, 0x0010, 0x0010, 0x0010, 0x0010, 0x0010, 0x0011, 0x0011, 0x0011,
	0x0011, 0x0011, 0x0012, 0x0012, 0x0012, 0x0012, 0x0012, 0x0013, 0x0013, 0x0013, 0x0013, 0x0013,
	0x0014, 0x0014, 0x0014, 0x0014, 0x0014, 0x0015, 0x0015, 0x0015, 0x0015, 0x0015, 0x0016, 0x0016,
	0x0016, 0x0016, 0x0017, 0x0017, 0x0017, 0x0017, 0x0017, 0x0018, 0x0018, 0x0018, 0x0018, 0x0019,
	0x0019, 0x0019, 0x0019, 0x0019, 0x001a, 0x001a, 0x001a, 0x001a, 0x001b, 0x001b, 0x001b, 0x001b,
	0x001c, 0x001c, 0x001c, 0x001c, 0x001d, 0x001d, 0x001d, 0x001d, 0x001e, 0x001e, 0x001e, 0x001e,
	0x001f, 0x001f, 0x001f, 0x001f, 0x0020, 0x0020, 0x0020, 0x0020, 0x0021, 0x0021, 0x0021, 0x0021,
	0x0022, 0x0022, 0x0022, 0x0023, 0x0023, 0x0023, 0x0023, 0x0024, 0x0024, 0x0024, 0x0024, 0x0025,
	0x0025, 0x0025, 0x0026, 0x0026, 0x0026, 0x0026, 0x0027, 0x0027, 0x0027, 0x0028, 0x0028, 0x0028,
	0x0029, 0x0029, 0x0029, 0x0029, 0x002a, 0x002a, 0x002a, 0x002b, 0x002b, 0x002b, 0x002c, 0x002c,
	0x002c, 0x002d, 0x002d, 0x002d, 0x002d, 0x002e, 0x002e, 0x002e, 0x002f, 0x002f, 0x002f, 0x0030,
	0x0030, 0x0030, 0x0031, 0x0031, 0x0031, 0x0032, 0x0032, 0x0032, 0x0033, 0x0033, 0x0033, 0x0034,
	0x0034, 0x0034, 0x0035, 0x0035, 0x0035, 0x0036, 0x0036, 0x0036, 0x0037, 0x0037, 0x0038, 0x0038,
	0x0038, 0x0039, 0x0039, 0x0039, 0x003a, 0x003a, 0x003a, 0x003b, 0x003b, 0x003c, 0x003c, 0x003c,
	0x003d, 0x003d, 0x003d, 0x003e, 0x003e, 0x003f, 0x003f, 0x003f, 0x0040, 0x0040, 0x0040, 0x0041,
	0x0041, 0x0042, 0x0042, 0x0042, 0x0043, 0x0043, 0x0044, 0x0044, 0x0044, 0x0045, 0x0045, 0x0046,
	0x0046, 0x0046, 0x0047, 0x0047, 0x0048, 0x0048, 0x0048, 0x0049, 0x0049, 0x004a, 0x004a, 0x004a,
	0x004b, 0x004b, 0x004c, 0x004c, 0x004d, 0x004d, 0x004d, 0x004e, 0x004e, 0x004f, 0x004f, 0x004f,
	0x0050, 0x0050, 0x0051, 0x0051, 0x0052, 0x0052, 0x0053, 0x0053, 0x0053, 0x0054, 0x0054, 0x0055,
	0x0055, 0x0056, 0x0056, 0x0057, 0x0057, 0x0057, 0x0058, 0x0058, 0x0059, 0x0059, 0x005a, 0x005a,
	0x005b, 0x005b, 0x005c, 0x005c, 0x005d, 0x005d, 0x005d, 0x005e, 0x005e, 0x005f, 0x005f, 0x0060,
	0x0060, 0x0061, 0x0061, 0x0062, 0x0062, 0x0063, 0x0063, 0x0064, 0x0064, 0x0065, 0x0065, 0x0066,
	0x0066, 0x0067, 0x0067, 0x0068, 0x0068, 0x0069, 0x0069, 0x006a, 0x006a, 0x006b, 0x006b, 0x006c,
	0x006c, 0x006d, 0x006d, 0x006e, 0x006e, 0x006f, 0x006f, 0x0070, 0x0070, 0x0071, 0x0071, 0x0072,
	0x0072, 0x0073, 0x0073, 0x0074, 0x0075, 0x0075, 0x0076, 0x0076, 0x0077, 0x0077, 0x0078, 0x0078,
	0x0079, 0x0079, 0x007a, 0x007a, 0x007b, 0x007c, 0x007c, 0x007d, 0x007d, 0x007e, 0x007e, 0x007f,
	0x007f, 0x0080, 0x0081, 0x0081, 0x0082, 0x0082, 0x0083, 0x0083, 0x0084, 0x0084, 0x0085, 0x0086,
	0x0086, 0x0087, 0x0087, 0x0088, 0x0089, 0x0089, 0x008a, 0x008a, 0x008b, 0x008b, 0x008c, 0x008d,
	0x008d, 0x008e, 0x008e, 0x008f, 0x0090, 0x0090, 0x0091, 0x0091, 0x0092, 0x0093, 0x0093, 0x0094,
	0x0094, 0x0095, 0x0096, 0x0096, 0x0097, 0x0097, 0x0098, 0x0099, 0x0099, 0x009a, 0x009b, 0x009b,
	0x009c, 0x009c, 0x009d, 0x009e, 0x009e, 0x009f, 0x00a0, 0x00a0, 0x00a1, 0x00a1, 0x00a2, 0x00a3,
	0x00a3, 0x00a4, 0x00a5, 0x00a5, 0x00a6, 0x00a7, 0x00a7, 0x00a8, 0x00a8, 0x00a9, 0x00aa, 0x00aa,
	0x00ab, 0x00ac, 0x00ac, 0x00ad, 0x00ae, 0x00ae, 0x00af, 0x00b0, 0x00b0, 0x00b1, 0x00b2, 0x00b2,
	0x00b3, 0x00b4, 0x00b4, 0x00b5, 0x00b6, 0x00b6, 0x00b7, 0x00b8, 0x00b8, 0x00b9, 0x00ba, 0x00bb,
	0x00bb, 0x00bc, 0x00bd, 0x00bd, 0x00be, 0x00bf, 0x00bf, 0x00c0, 0x00c1, 0x00c1, 0x00c2, 0x00c3,
	0x00c4, 0x00c4, 0x00c5, 0x00c6, 0x00c6, 0x00c7, 0x00c8, 0x00c9, 0x00c9, 0x00ca, 0x00cb, 0x00cb,
	0x00cc, 0x00cd, 0x00ce, 0x00ce, 0x00cf, 0x00d0, 0x00d1, 0x00d1, 0x00d2, 0x00d3, 0x00d3, 0x00d4,
	0x00d5, 0x00d6, 0x00d6, 0x00d7, 0x00d8, 0x00d9, 0x00d9, 0x00da, 0x00db, 0x00dc, 0x00dc, 0x00dd,
	0x00de, 0x00df, 0x00df, 0x00e0, 0x00e1, 0x00e2, 0x00e2, 0x00e3, 0x00e4, 0x00e5, 0x00e6, 0x00e6,
	0x00e7, 0x00e8, 0x00e9, 0x00e9, 0x00ea, 0x00eb, 0x00ec, 0x00ed, 0x00ed, 0x00ee, 0x00ef, 0x00f0,
	0x00f0, 0x00f1, 0x00f2, 0x00f3, 0x00f4, 0x00f4, 0x00f5, 0x00f6, 0x00f7, 0x00f8, 0x00f8, 0x00f9,
	0x00fa, 0x00fb, 0x00fc, 0x00fd, 0x00fd, 0x00fe, 0x00ff, 0x0100, 0x0101, 0x0101, 0x0102, 0x0103,
	0x0104, 0x0105, 0x0106, 0x0106, 0x0107, 0x0108, 0x0109, 0x010a, 0x010b, 0x010b, 0x010c, 0x010d,
	0x010e, 0x010f, 0x0110, 0x0110, 0x0111, 0x0112, 0x0113, 0x0114, 0x0115, 0x0116, 0x0116, 0x0117,
	0x0118, 0x0119, 0x011a, 0x011b, 0x011c, 0x011c, 0x011d, 0x011e, 0x011f, 0x0120, 0x0121, 0x0122,
	0x0123, 0x0123, 0x0124, 0x0125, 0x0126, 0x0127, 0x0128, 0x0129, 0x012a, 0x012a, 0x012b, 0x012c,
	0x012d, 0x012e, 0x012f, 0x0130, 0x0131, 0x0132, 0x0133, 0x0133, 0x0134, 0x0135, 0x0136, 0x0137,
	0x0138, 0x0139, 0x013a, 0x013b, 0x013c, 0x013d, 0x013d, 0x013e, 0x013f, 0x0140, 0x0141, 0x0142,
	0x0143, 0x0144, 0x0145, 0x0146, 0x0147, 0x0148, 0x0149, 0x014a, 0x014b, 0x014b, 0x014c, 0x014d,
	0x014e, 0x014f, 0x0150, 0x0151, 0x0152, 0x0153, 0x0154, 0x0155, 0x0156, 0x0157, 0x0158, 0x0159,
	0x015a, 0x015b, 0x015c, 0x015d, 0x015e, 0x015f, 0x0160, 0x0161, 0x0162, 0x0163, 0x0163, 0x0164,
	0x0165, 0x0166, 0x0167, 0x0168, 0x0169, 0x016a, 0x016b, 0x016c, 0x016d, 0x016e, 0x016f, 0x0170,
	0x0171, 0x0172, 0x0173, 0x0174, 0x0175, 0x0176, 0x0177, 0x0178, 0x0179, 0x017a, 0x017b, 0x017c,
	0x017d, 0x017e, 0x0180, 0x0181, 0x0182, 0x0183, 0x0184, 0x0185, 0x0186, 0x0187, 0x0188, 0x0189,
	0x018a, 0x018b, 0x018c, 0x018d, 0x018e, 0x018f, 0x0190, 0x0191, 0x0192, 0x0193, 0x0194, 0x0195,
	0x0196, 0x0197, 0x0198, 0x019a, 0x019b, 0x019c, 0x019d, 0x019e, 0x019f, 0x01a0, 0x01a1, 0x01a2,
	0x01a3, 0x01a4, 0x01a5, 0x01a6, 0x01a7, 0x01a8, 0x01aa, 0x01ab, 0x01ac, 0x01ad, 0x01ae, 0x01af,
	0x01b0, 0x01b1, 0x01b2, 0x01b3, 0x01b4, 0x01b6, 0x01b7, 0x01b8, 0x01b9, 0x01ba, 0x01bb, 0x01bc,
	0x01bd, 0x01be, 0x01bf, 0x01c1, 0x01c2, 0x01c3, 0x01c4, 0x01c5, 0x01c6, 0x01c7, 0x01c8, 0x01ca,
	0x01cb, 0x01cc, 0x01cd, 0x01ce, 0x01cf, 0x01d0, 0x01d1, 0x01d3, 0x01d4, 0x01d5, 0x01d6, 0x01d7,
	0x01d8, 0x01d9, 0x01db, 0x01dc, 0x01dd, 0x01de, 0x01df, 0x01e0, 0x01e2, 0x01e3, 0x01e4, 0x01e5,
	0x01e6, 0x01e7, 0x01e9, 0x01ea, 0x01eb, 0x01ec, 0x01ed, 0x01ee, 0x01f0, 0x01f1, 0x01f2, 0x01f3,
	0x01f4, 0x01f5, 0x01f7, 0x01f8, 0x01f9, 0x01fa, 0x01fb, 0x01fd, 0x01fe, 0x01ff, 0x0200, 0x0201,
	0x0203, 0x0204, 0x0205, 0x0206, 0x0207, 0x0209, 0x020a, 0x020b, 0x020c, 0x020d, 0x020f, 0x0210,
	0x0211, 0x0212, 0x0214, 0x0215, 0x0216, 0x0217, 0x0218, 0x021a, 0x021b, 0x021c, 0x021d, 0x021f,
	0x0220, 0x0221, 0x0222, 0x0224, 0x0225, 0x0226, 0x0227, 0x0229, 0x022a, 0x022b, 0x022c, 0x022e,
	0x022f, 0x0230, 0x0231, 0x0233, 0x0234, 0x0235, 0x0236, 0x0238, 0x0239, 0x023a, 0x023b, 0x023d,
	0x023e, 0x023f, 0x0241, 0x0242, 0x0243, 0x0244, 0x0246, 0x0247, 0x0248, 0x0249, 0x024b, 0x024c,
	0x024d, 0x024f, 0x0250, 0x0251, 0x0253, 0x0254, 0x0255, 0x0256, 0x0258, 0x0259, 0x025a, 0x025c,
	0x025d, 0x025e, 0x0260, 0x0261, 0x0262, 0x0264, 0x0265, 0x0266, 0x0268, 0x0269, 0x026a, 0x026c,
	0x026d, 0x026e, 0x0270, 0x0271, 0x0272, 0x0274, 0x0275, 0x0276, 0x0278, 0x0279, 0x027a, 0x027c,
	0x027d, 0x027e, 0x0280, 0x0281, 0x0282, 0x0284, 0x0285, 0x0286, 0x0288, 0x0289, 0x028b, 0x028c,
	0x028d, 0x028f, 0x0290, 0x0291, 0x0293, 0x0294, 0x0295, 0x0297, 0x0298, 0x029a, 0x029b, 0x029c,
	0x029e, 0x029f, 0x02a1, 0x02a2, 0x02a3, 0x02a5, 0x02a6, 0x02a8, 0x02a9, 0x02aa, 0x02ac, 0x02ad,
	0x02af, 0x02b0, 0x02b1, 0x02b3, 0x02b4, 0x02b6, 0x02b7, 0x02b8, 0x02ba, 0x02bb, 0x02bd, 0x02be,
	0x02c0, 0x02c1, 0x02c2, 0x02c4, 0x02c5, 0x02c7, 0x02c8, 0x02ca, 0x02cb, 0x02cc, 0x02ce, 0x02cf,
	0x02d1, 0x02d2, 0x02d4, 0x02d5, 0x02d7, 0x02d8, 0x02d9, 0x02db, 0x02dc, 0x02de, 0x02df, 0x02e1,
	0x02e2, 0x02e4, 0x02e5, 0x02e7, 0x02e8, 0x02ea, 0x02eb, 0x02ed, 0x02ee, 0x02ef, 0x02f1, 0x02f2,
	0x02f4, 0x02f5, 0x02f7, 0x02f8, 0x02fa, 0x02fb, 0x02fd, 0x02fe, 0x0300, 0x0301, 0x0303, 0x0304,
	0x0306, 0x0307, 0x0309, 0x030a, 0x030c, 0x030d, 0x030f, 0x0310, 0x0312, 0x0313, 0x0315, 0x0316,
	0x0318, 0x0319, 0x031b, 0x031d, 0x031e, 0x0320, 0x0321, 0x0323, 0x0324, 0x0326, 0x0327, 0x0329,
	0x032a, 0x032c, 0x032d, 0x032f, 0x0331, 0x0332, 0x0334, 0x0335, 0x0337, 0x0338, 0x033a, 0x033b,
	0x033d, 0x033f, 0x0340, 0x0342, 0x0343, 0x0345, 0x0346, 0x0348, 0x0349, 0x034b, 0x034d, 0x034e,
	0x0350, 0x0351, 0x0353, 0x0355, 0x0356, 0x0358, 0x0359, 0x035b, 0x035c, 0x035e, 0x0360, 0x0361,
	0x0363, 0x0364, 0x0366, 0x0368, 0x0369, 0x036b, 0x036c, 0x036e, 0x0370, 0x0371, 0x0373, 0x0375,
	0x0376, 0x0378, 0x0379, 0x037b, 0x037d, 0x037e, 0x0380, 0x0382, 0x0383, 0x0385, 0x0386, 0x0388,
	0x038a, 0x038b, 0x038d, 0x038f, 0x0390, 0x0392, 0x0394, 0x0395, 0x0397, 0x0399, 0x039a, 0x039c,
	0x039d, 0x039f, 0x03a1, 0x03a2, 0x03a4, 0x03a6, 0x03a7, 0x03a9, 0x03ab, 0x03ac, 0x03ae, 0x03b0,
	0x03b1, 0x03b3, 0x03b5, 0x03b7, 0x03b8, 0x03ba, 0x03bc, 0x03bd, 0x03bf, 0x03c1, 0x03c2, 0x03c4,
	0x03c6, 0x03c7, 0x03c9, 0x03cb, 0x03cd, 0x03ce, 0x03d0, 0x03d2, 0x03d3, 0x03d5, 0x03d7, 0x03d9,
	0x03da, 0x03dc, 0x03de, 0x03df, 0x03e1, 0x03e3, 0x03e5, 0x03e6, 0x03e8, 0x03ea, 0x03eb, 0x03ed,
	0x03ef, 0x03f1, 0x03f2, 0x03f4, 0x03f6, 0x03f8, 0x03f9, 0x03fb, 0x03fd, 0x03ff, 0x0400, 0x0402,
	0x0404, 0x0406, 0x0407, 0x0409, 0x040b, 0x040d, 0x040e, 0x0410, 0x0412, 0x0414, 0x0416, 0x0417,
	0x0419, 0x041b, 0x041d, 0x041e, 0x0420, 0x0422, 0x0424, 0x0426, 0x0427, 0x0429, 0x042b, 0x042d,
	0x042f, 0x0430, 0x0432, 0x0434, 0x0436, 0x0438, 0x0439, 0x043b, 0x043d, 0x043f, 0x0441, 0x0442,
	0x0444, 0x0446, 0x0448, 0x044a, 0x044b, 0x044d, 0x044f, 0x0451, 0x0453, 0x0455, 0x0456, 0x0458,
	0x045a, 0x045c, 0x045e, 0x0460, 0x0461, 0x0463, 0x0465, 0x0467, 0x0469, 0x046b, 0x046d, 0x046e,
	0x0470, 0x0472, 0x0474, 0x0476, 0x0478, 0x047a, 0x047b, 0x047d, 0x047f, 0x0481, 0x0483, 0x0485,
	0x0487, 0x0488, 0x048a, 0x048c, 0x048e, 0x0490, 0x0492, 0x0494, 0x0496, 0x0498, 0x0499, 0x049b,
	0x049d, 0x049f, 0x04a1, 0x04a3, 0x04a5, 0x04a7, 0x04a9, 0x04ab, 0x04ac, 0x04ae, 0x04b0, 0x04b2,
	0x04b4, 0x04b6, 0x04b8, 0x04ba, 0x04bc, 0x04be, 0x04c0, 0x04c2, 0x04c3, 0x04c5, 0x04c7, 0x04c9,
	0x04cb, 0x04cd, 0x04cf, 0x04d1, 0x04d3, 0x04d5, 0x04d7, 0x04d9, 0x04db, 0x04dd, 0x04df, 0x04e1,
	0x04e3, 0x04e5, 0x04e6, 0x04e8, 0x04ea, 0x04ec, 0x04ee, 0x04f0, 0x04f2, 0x04f4, 0x04f6, 0x04f8,
	0x04fa, 0x04fc, 0x04fe, 0x0500, 0x0502, 0x0504, 0x0506, 0x0508, 0x050a, 0x050c, 0x050e, 0x0510,
	0x0512, 0x0514, 0x0516, 0x0518, 0x051a, 0x051c, 0x051e, 0x0520, 0x0522, 0x0524, 0x0526, 0x0528,
	0x052a, 0x052c, 0x052e, 0x0530, 0x0532, 0x0534, 0x0536, 0x0538, 0x053a, 0x053c, 0x053e, 0x0540,
	0x0542, 0x0544, 0x0546, 0x0549, 0x054b, 0x054d, 0x054f, 0x0551, 0x0553, 0x0555, 0x0557, 0x0559,
	0x055b, 0x055d, 0x055f, 0x0561, 0x0563, 0x0565, 0x0567, 0x0569, 0x056b,
}

// ccir709ToSRGB recompresses linear-light CCIR 709 values back into the
// sRGB tone curve, scaled to the 0..1388 index range.
var ccir709ToSRGB = [lutSize]uint16{
	0x0000, 0x000c, 0x0019, 0x0026, 0x0033, 0x0040, 0x004b, 0x0055, 0x005e, 0x0067, 0x006f, 0x0076,
	0x007d, 0x0084, 0x008b, 0x0091, 0x0097, 0x009d, 0x00a3, 0x00a8, 0x00ad, 0x00b3, 0x00b8, 0x00bc,
	0x00c1, 0x00c6, 0x00ca, 0x00cf, 0x00d3, 0x00d7, 0x00db, 0x00e0, 0x00e4, 0x00e7, 0x00eb, 0x00ef,
	0x00f3, 0x00f7, 0x00fa, 0x00fe, 0x0101, 0x0105, 0x0108, 0x010b, 0x010f, 0x0112, 0x0115, 0x0118,
	0x011c, 0x011f, 0x0122, 0x0125, 0x0128, 0x012b, 0x012e, 0x0131, 0x0134, 0x0136, 0x0139, 0x013c,
	0x013f, 0x0141, 0x0144, 0x0147, 0x0149, 0x014c, 0x014f, 0x0151, 0x0154, 0x0156, 0x0159, 0x015b,
	0x015e, 0x0160, 0x0163, 0x0165, 0x0168, 0x016a, 0x016c, 0x016f, 0x0171, 0x0173, 0x0176, 0x0178,
	0x017a, 0x017c, 0x017f, 0x0181, 0x0183, 0x0185, 0x0188, 0x018a, 0x018c, 0x018e, 0x0190, 0x0192,
	0x0194, 0x0196, 0x0198, 0x019a, 0x019d, 0x019f, 0x01a1, 0x01a3, 0x01a5, 0x01a7, 0x01a9, 0x01ab,
	0x01ac, 0x01ae, 0x01b0, 0x01b2, 0x01b4, 0x01b6, 0x01b8, 0x01ba, 0x01bc, 0x01be, 0x01bf, 0x01c1,
	0x01c3, 0x01c5, 0x01c7, 0x01c9, 0x01ca, 0x01cc, 0x01ce, 0x01d0, 0x01d2, 0x01d3, 0x01d5, 0x01d7,
	0x01d9, 0x01da, 0x01dc, 0x01de, 0x01df, 0x01e1, 0x01e3, 0x01e5, 0x01e6, 0x01e8, 0x01ea, 0x01eb,
	0x01ed, 0x01ee, 0x01f0, 0x01f2, 0x01f3, 0x01f5, 0x01f7, 0x01f8, 0x01fa, 0x01fb, 0x01fd, 0x01ff,
	0x0200, 0x0202, 0x0203, 0x0205, 0x0206, 0x0208, 0x0209, 0x020b, 0x020d, 0x020e, 0x0210, 0x0211,
	0x0213, 0x0214, 0x0216, 0x0217, 0x0219, 0x021a, 0x021c, 0x021d, 0x021f, 0x0220, 0x0221, 0x0223,
	0x0224, 0x0226, 0x0227, 0x0229, 0x022a, 0x022c, 0x022d, 0x022e, 0x0230, 0x0231, 0x0233, 0x0234,
	0x0235, 0x0237, 0x0238, 0x023a, 0x023b, 0x023c, 0x023e, 0x023f, 0x0240, 0x0242, 0x0243, 0x0244,
	0x0246, 0x0247, 0x0248, 0x024a, 0x024b, 0x024c, 0x024e, 0x024f, 0x0250, 0x0252, 0x0253, 0x0254,
	0x0256, 0x0257, 0x0258, 0x025a, 0x025b, 0x025c, 0x025d, 0x025f, 0x0260, 0x0261, 0x0263, 0x0264,
	0x0265, 0x0266, 0x0268, 0x0269, 0x026a, 0x026b, 0x026d, 0x026e, 0x026f, 0x0270, 0x0272, 0x0273,
	0x0274, 0x0275, 0x0276, 0x0278, 0x0279, 0x027a, 0x027b, 0x027c, 0x027e, 0x027f, 0x0280, 0x0281,
	0x0282, 0x0284, 0x0285, 0x0286, 0x0287, 0x0288, 0x028a, 0x028b, 0x028c, 0x028d, 0x028e, 0x028f,
	0x0291, 0x0292, 0x0293, 0x0294, 0x0295, 0x0296, 0x0297, 0x0299, 0x029a, 0x029b, 0x029c, 0x029d,
	0x029e, 0x029f, 0x02a0, 0x02a2, 0x02a3, 0x02a4, 0x02a5, 0x02a6, 0x02a7, 0x02a8, 0x02a9, 0x02aa,
	0x02ac, 0x02ad, 0x02ae, 0x02af, 0x02b0, 0x02b1, 0x02b2, 0x02b3, 0x02b4, 0x02b5, 0x02b6, 0x02b8,
	0x02b9, 0x02ba, 0x02bb, 0x02bc, 0x02bd, 0x02be, 0x02bf, 0x02c0, 0x02c1, 0x02c2, 0x02c3, 0x02c4,
	0x02c5, 0x02c6, 0x02c7, 0x02c9, 0x02ca, 0x02cb, 0x02cc, 0x02cd, 0x02ce, 0x02cf, 0x02d0, 0x02d1,
	0x02d2, 0x02d3, 0x02d4, 0x02d5, 0x02d6, 0x02d7, 0x02d8, 0x02d9, 0x02da, 0x02db, 0x02dc, 0x02dd,
	0x02de, 0x02df, 0x02e0, 0x02e1, 0x02e2, 0x02e3, 0x02e4, 0x02e5, 0x02e6, 0x02e7, 0x02e8, 0x02e9,
	0x02ea, 0x02eb, 0x02ec, 0x02ed, 0x02ee, 0x02ef, 0x02f0, 0x02f1, 0x02f2, 0x02f3, 0x02f4, 0x02f5,
	0x02f6, 0x02f7, 0x02f8, 0x02f9, 0x02fa, 0x02fa, 0x02fb, 0x02fc, 0x02fd, 0x02fe, 0x02ff, 0x0300,
	0x0301, 0x0302, 0x0303, 0x0304, 0x0305, 0x0306, 0x0307, 0x0308, 0x0309, 0x030a, 0x030b, 0x030b,
	0x030c, 0x030d, 0x030e, 0x030f, 0x0310, 0x0311, 0x0312, 0x0313, 0x0314, 0x0315, 0x0316, 0x0317,
	0x0317, 0x0318, 0x0319, 0x031a, 0x031b, 0x031c, 0x031d, 0x031e, 0x031f, 0x0320, 0x0321, 0x0321,
	0x0322, 0x0323, 0x0324, 0x0325, 0x0326, 0x0327, 0x0328, 0x0329, 0x032a, 0x032a, 0x032b, 0x032c,
	0x032d, 0x032e, 0x032f, 0x0330, 0x0331, 0x0331, 0x0332, 0x0333, 0x0334, 0x0335, 0x0336, 0x0337,
	0x0338, 0x0338, 0x0339, 0x033a, 0x033b, 0x033c, 0x033d, 0x033e, 0x033e, 0x033f, 0x0340, 0x0341,
	0x0342, 0x0343, 0x0344, 0x0344, 0x0345, 0x0346, 0x0347, 0x0348, 0x0349, 0x034a, 0x034a, 0x034b,
	0x034c, 0x034d, 0x034e, 0x034f, 0x034f, 0x0350, 0x0351, 0x0352, 0x0353, 0x0354, 0x0354, 0x0355,
	0x0356, 0x0357, 0x0358, 0x0359, 0x0359, 0x035a, 0x035b, 0x035c, 0x035d, 0x035e, 0x035e, 0x035f,
	0x0360, 0x0361, 0x0362, 0x0362, 0x0363, 0x0364, 0x0365, 0x0366, 0x0366, 0x0367, 0x0368, 0x0369,
	0x036a, 0x036a, 0x036b, 0x036c, 0x036d, 0x036e, 0x036f, 0x036f, 0x0370, 0x0371, 0x0372, 0x0372,
	0x0373, 0x0374, 0x0375, 0x0376, 0x0376, 0x0377, 0x0378, 0x0379, 0x037a, 0x037a, 0x037b, 0x037c,
	0x037d, 0x037e, 0x037e, 0x037f, 0x0380, 0x0381, 0x0381, 0x0382, 0x0383, 0x0384, 0x0385, 0x0385,
	0x0386, 0x0387, 0x0388, 0x0388, 0x0389, 0x038a, 0x038b, 0x038b, 0x038c, 0x038d, 0x038e, 0x038f,
	0x038f, 0x0390, 0x0391, 0x0392, 0x0392, 0x0393, 0x0394, 0x0395, 0x0395, 0x0396, 0x0397, 0x0398,
	0x0398, 0x0399, 0x039a, 0x039b, 0x039b, 0x039c, 0x039d, 0x039e, 0x039e, 0x039f, 0x03a0, 0x03a1,
	0x03a1, 0x03a2, 0x03a3, 0x03a4, 0x03a4, 0x03a5, 0x03a6, 0x03a7, 0x03a7, 0x03a8, 0x03a9, 0x03a9,
	0x03aa, 0x03ab, 0x03ac, 0x03ac, 0x03ad, 0x03ae, 0x03af, 0x03af, 0x03b0, 0x03b1, 0x03b2, 0x03b2,
	0x03b3, 0x03b4, 0x03b4, 0x03b5, 0x03b6, 0x03b7, 0x03b7, 0x03b8, 0x03b9, 0x03b9, 0x03ba, 0x03bb,
	0x03bc, 0x03bc, 0x03bd, 0x03be, 0x03be, 0x03bf, 0x03c0, 0x03c1, 0x03c1, 0x03c2, 0x03c3, 0x03c3,
	0x03c4, 0x03c5, 0x03c6, 0x03c6, 0x03c7, 0x03c8, 0x03c8, 0x03c9, 0x03ca, 0x03cb, 0x03cb, 0x03cc,
	0x03cd, 0x03cd, 0x03ce, 0x03cf, 0x03cf, 0x03d0, 0x03d1, 0x03d2, 0x03d2, 0x03d3, 0x03d4, 0x03d4,
	0x03d5, 0x03d6, 0x03d6, 0x03d7, 0x03d8, 0x03d8, 0x03d9, 0x03da, 0x03db, 0x03db, 0x03dc, 0x03dd,
	0x03dd, 0x03de, 0x03df, 0x03df, 0x03e0, 0x03e1, 0x03e1, 0x03e2, 0x03e3, 0x03e3, 0x03e4, 0x03e5,
	0x03e5, 0x03e6, 0x03e7, 0x03e7, 0x03e8, 0x03e9, 0x03ea, 0x03ea, 0x03eb, 0x03ec, 0x03ec, 0x03ed,
	0x03ee, 0x03ee, 0x03ef, 0x03f0, 0x03f0, 0x03f1, 0x03f2, 0x03f2, 0x03f3, 0x03f4, 0x03f4, 0x03f5,
	0x03f6, 0x03f6, 0x03f7, 0x03f8, 0x03f8, 0x03f9, 0x03fa, 0x03fa, 0x03fb, 0x03fc, 0x03fc, 0x03fd,
	0x03fd, 0x03fe, 0x03ff, 0x03ff, 0x0400, 0x0401, 0x0401, 0x0402, 0x0403, 0x0403, 0x0404, 0x0405,
	0x0405, 0x0406, 0x0407, 0x0407, 0x0408, 0x0409, 0x0409, 0x040a, 0x040b, 0x040b, 0x040c, 0x040c,
	0x040d, 0x040e, 0x040e, 0x040f, 0x0410, 0x0410, 0x0411, 0x0412, 0x0412, 0x0413, 0x0414, 0x0414,
	0x0415, 0x0415, 0x0416, 0x0417, 0x0417, 0x0418, 0x0419, 0x0419, 0x041a, 0x041b, 0x041b, 0x041c,
	0x041c, 0x041d, 0x041e, 0x041e, 0x041f, 0x0420, 0x0420, 0x0421, 0x0421, 0x0422, 0x0423, 0x0423,
	0x0424, 0x0425, 0x0425, 0x0426, 0x0426, 0x0427, 0x0428, 0x0428, 0x0429, 0x042a, 0x042a, 0x042b,
	0x042b, 0x042c, 0x042d, 0x042d, 0x042e, 0x042f, 0x042f, 0x0430, 0x0430, 0x0431, 0x0432, 0x0432,
	0x0433, 0x0434, 0x0434, 0x0435, 0x0435, 0x0436, 0x0437, 0x0437, 0x0438, 0x0438, 0x0439, 0x043a,
	0x043a, 0x043b, 0x043b, 0x043c, 0x043d, 0x043d, 0x043e, 0x043f, 0x043f, 0x0440, 0x0440, 0x0441,
	0x0442, 0x0442, 0x0443, 0x0443, 0x0444, 0x0445, 0x0445, 0x0446, 0x0446, 0x0447, 0x0448, 0x0448,
	0x0449, 0x0449, 0x044a, 0x044b, 0x044b, 0x044c, 0x044c, 0x044d, 0x044e, 0x044e, 0x044f, 0x044f,
	0x0450, 0x0451, 0x0451, 0x0452, 0x0452, 0x0453, 0x0453, 0x0454, 0x0455, 0x0455, 0x0456, 0x0456,
	0x0457, 0x0458, 0x0458, 0x0459, 0x0459, 0x045a, 0x045b, 0x045b, 0x045c, 0x045c, 0x045d, 0x045d,
	0x045e, 0x045f, 0x045f, 0x0460, 0x0460, 0x0461, 0x0462, 0x0462, 0x0463, 0x0463, 0x0464, 0x0464,
	0x0465, 0x0466, 0x0466, 0x0467, 0x0467, 0x0468, 0x0469, 0x0469, 0x046a, 0x046a, 0x046b, 0x046b,
	0x046c, 0x046d, 0x046d, 0x046e, 0x046e, 0x046f, 0x046f, 0x0470, 0x0471, 0x0471, 0x0472, 0x0472,
	0x0473, 0x0473, 0x0474, 0x0475, 0x0475, 0x0476, 0x0476, 0x0477, 0x0477, 0x0478, 0x0479, 0x0479,
	0x047a, 0x047a, 0x047b, 0x047b, 0x047c, 0x047c, 0x047d, 0x047e, 0x047e, 0x047f, 0x047f, 0x0480,
	0x0480, 0x0481, 0x0482, 0x0482, 0x0483, 0x0483, 0x0484, 0x0484, 0x0485, 0x0485, 0x0486, 0x0487,
	0x0487, 0x0488, 0x0488, 0x0489, 0x0489, 0x048a, 0x048a, 0x048b, 0x048c, 0x048c, 0x048d, 0x048d,
	0x048e, 0x048e, 0x048f, 0x048f, 0x0490, 0x0491, 0x0491, 0x0492, 0x0492, 0x0493, 0x0493, 0x0494,
	0x0494, 0x0495, 0x0496, 0x0496, 0x0497, 0x0497, 0x0498, 0x0498, 0x0499, 0x0499, 0x049a, 0x049a,
	0x049b, 0x049c, 0x049c, 0x049d, 0x049d, 0x049e, 0x049e, 0x049f, 0x049f, 0x04a0, 0x04a0, 0x04a1,
	0x04a1, 0x04a2, 0x04a3, 0x04a3, 0x04a4, 0x04a4, 0x04a5, 0x04a5, 0x04a6, 0x04a6, 0x04a7, 0x04a7,
	0x04a8, 0x04a9, 0x04a9, 0x04aa, 0x04aa, 0x04ab, 0x04ab, 0x04ac, 0x04ac, 0x04ad, 0x04ad, 0x04ae,
	0x04ae, 0x04af, 0x04af, 0x04b0, 0x04b1, 0x04b1, 0x04b2, 0x04b2, 0x04b3, 0x04b3, 0x04b4, 0x04b4,
	0x04b5, 0x04b5, 0x04b6, 0x04b6, 0x04b7, 0x04b7, 0x04b8, 0x04b8, 0x04b9, 0x04ba, 0x04ba, 0x04bb,
	0x04bb, 0x04bc, 0x04bc, 0x04bd, 0x04bd, 0x04be, 0x04be, 0x04bf, 0x04bf, 0x04c0, 0x04c0, 0x04c1,
	0x04c1, 0x04c2, 0x04c2, 0x04c3, 0x04c3, 0x04c4, 0x04c5, 0x04c5, 0x04c6, 0x04c6, 0x04c7, 0x04c7,
	0x04c8, 0x04c8, 0x04c9, 0x04c9, 0x04ca, 0x04ca, 0x04cb, 0x04cb, 0x04cc, 0x04cc, 0x04cd, 0x04cd,
	0x04ce, 0x04ce, 0x04cf, 0x04cf, 0x04d0, 0x04d0, 0x04d1, 0x04d1, 0x04d2, 0x04d2, 0x04d3, 0x04d4,
	0x04d4, 0x04d5, 0x04d5, 0x04d6, 0x04d6, 0x04d7, 0x04d7, 0x04d8, 0x04d8, 0x04d9, 0x04d9, 0x04da,
	0x04da, 0x04db, 0x04db, 0x04dc, 0x04dc, 0x04dd, 0x04dd, 0x04de, 0x04de, 0x04df, 0x04df, 0x04e0,
	0x04e0, 0x04e1, 0x04e1, 0x04e2, 0x04e2, 0x04e3, 0x04e3, 0x04e4, 0x04e4, 0x04e5, 0x04e5, 0x04e6,
	0x04e6, 0x04e7, 0x04e7, 0x04e8, 0x04e8, 0x04e9, 0x04e9, 0x04ea, 0x04ea, 0x04eb, 0x04eb, 0x04ec,
	0x04ec, 0x04ed, 0x04ed, 0x04ee, 0x04ee, 0x04ef, 0x04ef, 0x04f0, 0x04f0, 0x04f1, 0x04f1, 0x04f2,
	0x04f2, 0x04f3, 0x04f3, 0x04f4, 0x04f4, 0x04f5, 0x04f5, 0x04f6, 0x04f6, 0x04f7, 0x04f7, 0x04f8,
	0x04f8, 0x04f9, 0x04f9, 0x04fa, 0x04fa, 0x04fb, 0x04fb, 0x04fc, 0x04fc, 0x04fd, 0x04fd, 0x04fe,
	0x04fe, 0x04ff, 0x04ff, 0x0500, 0x0500, 0x0501, 0x0501, 0x0502, 0x0502, 0x0502, 0x0503, 0x0503,
	0x0504, 0x0504, 0x0505, 0x0505, 0x0506, 0x0506, 0x0507, 0x0507, 0x0508, 0x0508, 0x0509, 0x0509,
	0x050a, 0x050a, 0x050b, 0x050b, 0x050c, 0x050c, 0x050d, 0x050d, 0x050e, 0x050e, 0x050f, 0x050f,
	0x0510, 0x0510, 0x0511, 0x0511, 0x0512, 0x0512, 0x0512, 0x0513, 0x0513, 0x0514, 0x0514, 0x0515,
	0x0515, 0x0516, 0x0516, 0x0517, 0x0517, 0x0518, 0x0518, 0x0519, 0x0519, 0x051a, 0x051a, 0x051b,
	0x051b, 0x051c, 0x051c, 0x051c, 0x051d, 0x051d, 0x051e, 0x051e, 0x051f, 0x051f, 0x0520, 0x0520,
	0x0521, 0x0521, 0x0522, 0x0522, 0x0523, 0x0523, 0x0524, 0x0524, 0x0525, 0x0525, 0x0525, 0x0526,
	0x0526, 0x0527, 0x0527, 0x0528, 0x0528, 0x0529, 0x0529, 0x052a, 0x052a, 0x052b, 0x052b, 0x052c,
	0x052c, 0x052d, 0x052d, 0x052d, 0x052e, 0x052e, 0x052f, 0x052f, 0x0530, 0x0530, 0x0531, 0x0531,
	0x0532, 0x0532, 0x0533, 0x0533, 0x0534, 0x0534, 0x0534, 0x0535, 0x0535, 0x0536, 0x0536, 0x0537,
	0x0537, 0x0538, 0x0538, 0x0539, 0x0539, 0x053a, 0x053a, 0x053a, 0x053b, 0x053b, 0x053c, 0x053c,
	0x053d, 0x053d, 0x053e, 0x053e, 0x053f, 0x053f, 0x053f, 0x0540, 0x0540, 0x0541, 0x0541, 0x0542,
	0x0542, 0x0543, 0x0543, 0x0544, 0x0544, 0x0545, 0x0545, 0x0545, 0x0546, 0x0546, 0x0547, 0x0547,
	0x0548, 0x0548, 0x0549, 0x0549, 0x054a, 0x054a, 0x054a, 0x054b, 0x054b, 0x054c, 0x054c, 0x054d,
	0x054d, 0x054e, 0x054e, 0x054f, 0x054f, 0x054f, 0x0550, 0x0550, 0x0551, 0x0551, 0x0552, 0x0552,
	0x0553, 0x0553, 0x0553, 0x0554, 0x0554, 0x0555, 0x0555, 0x0556, 0x0556, 0x0557, 0x0557, 0x0558,
	0x0558, 0x0558, 0x0559, 0x0559, 0x055a, 0x055a, 0x055b, 0x055b, 0x055c, 0x055c, 0x055c, 0x055d,
	0x055d, 0x055e, 0x055e, 0x055f, 0x055f, 0x0560, 0x0560, 0x0560, 0x0561, 0x0561, 0x0562, 0x0562,
	0x0563, 0x0563, 0x0564, 0x0564, 0x0564, 0x0565, 0x0565, 0x0566, 0x0566, 0x0567, 0x0567, 0x0568,
	0x0568, 0x0568, 0x0569, 0x0569, 0x056a, 0x056a, 0x056b, 0x056b, 0x056b,
}

// uint8Output maps a final 0..1388 pixel index to an 8-bit sample.
var uint8Output = [lutSize]uint8{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01, 0x01, 0x01, 0x01, 0x02,
	0x02, 0x02, 0x02, 0x02, 0x02, 0x03, 0x03, 0x03, 0x03, 0x03, 0x04, 0x04,
	0x04, 0x04, 0x04, 0x04, 0x05, 0x05, 0x05, 0x05, 0x05, 0x06, 0x06, 0x06,
	0x06, 0x06, 0x06, 0x07, 0x07, 0x07, 0x07, 0x07, 0x08, 0x08, 0x08, 0x08,
	0x08, 0x09, 0x09, 0x09, 0x09, 0x09, 0x09, 0x0a, 0x0a, 0x0a, 0x0a, 0x0a,
	0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0b, 0x0c, 0x0c, 0x0c, 0x0c, 0x0c, 0x0d,
	0x0d, 0x0d, 0x0d, 0x0d, 0x0d, 0x0e, 0x0e, 0x0e, 0x0e, 0x0e, 0x0f, 0x0f,
	0x0f, 0x0f, 0x0f, 0x0f, 0x10, 0x10, 0x10, 0x10, 0x10, 0x11, 0x11, 0x11,
	0x11, 0x11, 0x12, 0x12, 0x12, 0x12, 0x12, 0x12, 0x13, 0x13, 0x13, 0x13,
	0x13, 0x14, 0x14, 0x14, 0x14, 0x14, 0x14, 0x15, 0x15, 0x15, 0x15, 0x15,
	0x16, 0x16, 0x16, 0x16, 0x16, 0x16, 0x17, 0x17, 0x17, 0x17, 0x17, 0x18,
	0x18, 0x18, 0x18, 0x18, 0x18, 0x19, 0x19, 0x19, 0x19, 0x19, 0x1a, 0x1a,
	0x1a, 0x1a, 0x1a, 0x1b, 0x1b, 0x1b, 0x1b, 0x1b, 0x1b, 0x1c, 0x1c, 0x1c,
	0x1c, 0x1c, 0x1d, 0x1d, 0x1d, 0x1d, 0x1d, 0x1d, 0x1e, 0x1e, 0x1e, 0x1e,
	0x1e, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x20, 0x20, 0x20, 0x20, 0x20,
	0x21, 0x21, 0x21, 0x21, 0x21, 0x21, 0x22, 0x22, 0x22, 0x22, 0x22, 0x23,
	0x23, 0x23, 0x23, 0x23, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x25, 0x25,
	0x25, 0x25, 0x25, 0x26, 0x26, 0x26, 0x26, 0x26, 0x26, 0x27, 0x27, 0x27,
	0x27, 0x27, 0x28, 0x28, 0x28, 0x28, 0x28, 0x28, 0x29, 0x29, 0x29, 0x29,
	0x29, 0x2a, 0x2a, 0x2a, 0x2a, 0x2a, 0x2a, 0x2b, 0x2b, 0x2b, 0x2b, 0x2b,
	0x2c, 0x2c, 0x2c, 0x2c, 0x2c, 0x2d, 0x2d, 0x2d, 0x2d, 0x2d, 0x2d, 0x2e,
	0x2e, 0x2e, 0x2e, 0x2e, 0x2f, 0x2f, 0x2f, 0x2f, 0x2f, 0x2f, 0x30, 0x30,
	0x30, 0x30, 0x30, 0x31, 0x31, 0x31, 0x31, 0x31, 0x31, 0x32, 0x32, 0x32,
	0x32, 0x32, 0x33, 0x33, 0x33, 0x33, 0x33, 0x33, 0x34, 0x34, 0x34, 0x34,
	0x34, 0x35, 0x35, 0x35, 0x35, 0x35, 0x36, 0x36, 0x36, 0x36, 0x36, 0x36,
	0x37, 0x37, 0x37, 0x37, 0x37, 0x38, 0x38, 0x38, 0x38, 0x38, 0x38, 0x39,
	0x39, 0x39, 0x39, 0x39, 0x3a, 0x3a, 0x3a, 0x3a, 0x3a, 0x3a, 0x3b, 0x3b,
	0x3b, 0x3b, 0x3b, 0x3c, 0x3c, 0x3c, 0x3c, 0x3c, 0x3c, 0x3d, 0x3d, 0x3d,
	0x3d, 0x3d, 0x3e, 0x3e, 0x3e, 0x3e, 0x3e, 0x3f, 0x3f, 0x3f, 0x3f, 0x3f,
	0x3f, 0x40, 0x40, 0x40, 0x40, 0x40, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41,
	0x42, 0x42, 0x42, 0x42, 0x42, 0x43, 0x43, 0x43, 0x43, 0x43, 0x43, 0x44,
	0x44, 0x44, 0x44, 0x44, 0x45, 0x45, 0x45, 0x45, 0x45, 0x45, 0x46, 0x46,
	0x46, 0x46, 0x46, 0x47, 0x47, 0x47, 0x47, 0x47, 0x48, 0x48, 0x48, 0x48,
	0x48, 0x48, 0x49, 0x49, 0x49, 0x49, 0x49, 0x4a, 0x4a, 0x4a, 0x4a, 0x4a,
	0x4a, 0x4b, 0x4b, 0x4b, 0x4b, 0x4b, 0x4c, 0x4c, 0x4c, 0x4c, 0x4c, 0x4c,
	0x4d, 0x4d, 0x4d, 0x4d, 0x4d, 0x4e, 0x4e, 0x4e, 0x4e, 0x4e, 0x4e, 0x4f,
	0x4f, 0x4f, 0x4f, 0x4f, 0x50, 0x50, 0x50, 0x50, 0x50, 0x51, 0x51, 0x51,
	0x51, 0x51, 0x51, 0x52, 0x52, 0x52, 0x52, 0x52, 0x53, 0x53, 0x53, 0x53,
	0x53, 0x53, 0x54, 0x54, 0x54, 0x54, 0x54, 0x55, 0x55, 0x55, 0x55, 0x55,
	0x55, 0x56, 0x56, 0x56, 0x56, 0x56, 0x57, 0x57, 0x57, 0x57, 0x57, 0x58,
	0x58, 0x58, 0x58, 0x58, 0x58, 0x59, 0x59, 0x59, 0x59, 0x59, 0x5a, 0x5a,
	0x5a, 0x5a, 0x5a, 0x5a, 0x5b, 0x5b, 0x5b, 0x5b, 0x5b, 0x5c, 0x5c, 0x5c,
	0x5c, 0x5c, 0x5c, 0x5d, 0x5d, 0x5d, 0x5d, 0x5d, 0x5e, 0x5e, 0x5e, 0x5e,
	0x5e, 0x5e, 0x5f, 0x5f, 0x5f, 0x5f, 0x5f, 0x60, 0x60, 0x60, 0x60, 0x60,
	0x61, 0x61, 0x61, 0x61, 0x61, 0x61, 0x62, 0x62, 0x62, 0x62, 0x62, 0x63,
	0x63, 0x63, 0x63, 0x63, 0x63, 0x64, 0x64, 0x64, 0x64, 0x64, 0x65, 0x65,
	0x65, 0x65, 0x65, 0x65, 0x66, 0x66, 0x66, 0x66, 0x66, 0x67, 0x67, 0x67,
	0x67, 0x67, 0x67, 0x68, 0x68, 0x68, 0x68, 0x68, 0x69, 0x69, 0x69, 0x69,
	0x69, 0x6a, 0x6a, 0x6a, 0x6a, 0x6a, 0x6a, 0x6b, 0x6b, 0x6b, 0x6b, 0x6b,
	0x6c, 0x6c, 0x6c, 0x6c, 0x6c, 0x6c, 0x6d, 0x6d, 0x6d, 0x6d, 0x6d, 0x6e,
	0x6e, 0x6e, 0x6e, 0x6e, 0x6e, 0x6f, 0x6f, 0x6f, 0x6f, 0x6f, 0x70, 0x70,
	0x70, 0x70, 0x70, 0x70, 0x71, 0x71, 0x71, 0x71, 0x71, 0x72, 0x72, 0x72,
	0x72, 0x72, 0x73, 0x73, 0x73, 0x73, 0x73, 0x73, 0x74, 0x74, 0x74, 0x74,
	0x74, 0x75, 0x75, 0x75, 0x75, 0x75, 0x75, 0x76, 0x76, 0x76, 0x76, 0x76,
	0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x78, 0x78, 0x78, 0x78, 0x78, 0x79,
	0x79, 0x79, 0x79, 0x79, 0x79, 0x7a, 0x7a, 0x7a, 0x7a, 0x7a, 0x7b, 0x7b,
	0x7b, 0x7b, 0x7b, 0x7c, 0x7c, 0x7c, 0x7c, 0x7c, 0x7c, 0x7d, 0x7d, 0x7d,
	0x7d, 0x7d, 0x7e, 0x7e, 0x7e, 0x7e, 0x7e, 0x7e, 0x7f, 0x7f, 0x7f, 0x7f,
	0x7f, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x81, 0x81, 0x81, 0x81, 0x81,
	0x82, 0x82, 0x82, 0x82, 0x82, 0x82, 0x83, 0x83, 0x83, 0x83, 0x83, 0x84,
	0x84, 0x84, 0x84, 0x84, 0x85, 0x85, 0x85, 0x85, 0x85, 0x85, 0x86, 0x86,
	0x86, 0x86, 0x86, 0x87, 0x87, 0x87, 0x87, 0x87, 0x87, 0x88, 0x88, 0x88,
	0x88, 0x88, 0x89, 0x89, 0x89, 0x89, 0x89, 0x89, 0x8a, 0x8a, 0x8a, 0x8a,
	0x8a, 0x8b, 0x8b, 0x8b, 0x8b, 0x8b, 0x8b, 0x8c, 0x8c, 0x8c, 0x8c, 0x8c,
	0x8d, 0x8d, 0x8d, 0x8d, 0x8d, 0x8e, 0x8e, 0x8e, 0x8e, 0x8e, 0x8e, 0x8f,
	0x8f, 0x8f, 0x8f, 0x8f, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x91, 0x91,
	0x91, 0x91, 0x91, 0x92, 0x92, 0x92, 0x92, 0x92, 0x92, 0x93, 0x93, 0x93,
	0x93, 0x93, 0x94, 0x94, 0x94, 0x94, 0x94, 0x94, 0x95, 0x95, 0x95, 0x95,
	0x95, 0x96, 0x96, 0x96, 0x96, 0x96, 0x97, 0x97, 0x97, 0x97, 0x97, 0x97,
	0x98, 0x98, 0x98, 0x98, 0x98, 0x99, 0x99, 0x99, 0x99, 0x99, 0x99, 0x9a,
	0x9a, 0x9a, 0x9a, 0x9a, 0x9b, 0x9b, 0x9b, 0x9b, 0x9b, 0x9b, 0x9c, 0x9c,
	0x9c, 0x9c, 0x9c, 0x9d, 0x9d, 0x9d, 0x9d, 0x9d, 0x9d, 0x9e, 0x9e, 0x9e,
	0x9e, 0x9e, 0x9f, 0x9f, 0x9f, 0x9f, 0x9f, 0xa0, 0xa0, 0xa0, 0xa0, 0xa0,
	0xa0, 0xa1, 0xa1, 0xa1, 0xa1, 0xa1, 0xa2, 0xa2, 0xa2, 0xa2, 0xa2, 0xa2,
	0xa3, 0xa3, 0xa3, 0xa3, 0xa3, 0xa4, 0xa4, 0xa4, 0xa4, 0xa4, 0xa4, 0xa5,
	0xa5, 0xa5, 0xa5, 0xa5, 0xa6, 0xa6, 0xa6, 0xa6, 0xa6, 0xa6, 0xa7, 0xa7,
	0xa7, 0xa7, 0xa7, 0xa8, 0xa8, 0xa8, 0xa8, 0xa8, 0xa9, 0xa9, 0xa9, 0xa9,
	0xa9, 0xa9, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xab, 0xab, 0xab, 0xab, 0xab,
	0xab, 0xac, 0xac, 0xac, 0xac, 0xac, 0xad, 0xad, 0xad, 0xad, 0xad, 0xad,
	0xae, 0xae, 0xae, 0xae, 0xae, 0xaf, 0xaf, 0xaf, 0xaf, 0xaf, 0xb0, 0xb0,
	0xb0, 0xb0, 0xb0, 0xb0, 0xb1, 0xb1, 0xb1, 0xb1, 0xb1, 0xb2, 0xb2, 0xb2,
	0xb2, 0xb2, 0xb2, 0xb3, 0xb3, 0xb3, 0xb3, 0xb3, 0xb4, 0xb4, 0xb4, 0xb4,
	0xb4, 0xb4, 0xb5, 0xb5, 0xb5, 0xb5, 0xb5, 0xb6, 0xb6, 0xb6, 0xb6, 0xb6,
	0xb6, 0xb7, 0xb7, 0xb7, 0xb7, 0xb7, 0xb8, 0xb8, 0xb8, 0xb8, 0xb8, 0xb9,
	0xb9, 0xb9, 0xb9, 0xb9, 0xb9, 0xba, 0xba, 0xba, 0xba, 0xba, 0xbb, 0xbb,
	0xbb, 0xbb, 0xbb, 0xbb, 0xbc, 0xbc, 0xbc, 0xbc, 0xbc, 0xbd, 0xbd, 0xbd,
	0xbd, 0xbd, 0xbd, 0xbe, 0xbe, 0xbe, 0xbe, 0xbe, 0xbf, 0xbf, 0xbf, 0xbf,
	0xbf, 0xbf, 0xc0, 0xc0, 0xc0, 0xc0, 0xc0, 0xc1, 0xc1, 0xc1, 0xc1, 0xc1,
	0xc2, 0xc2, 0xc2, 0xc2, 0xc2, 0xc2, 0xc3, 0xc3, 0xc3, 0xc3, 0xc3, 0xc4,
	0xc4, 0xc4, 0xc4, 0xc4, 0xc4, 0xc5, 0xc5, 0xc5, 0xc5, 0xc5, 0xc6, 0xc6,
	0xc6, 0xc6, 0xc6, 0xc6, 0xc7, 0xc7, 0xc7, 0xc7, 0xc7, 0xc8, 0xc8, 0xc8,
	0xc8, 0xc8, 0xc8, 0xc9, 0xc9, 0xc9, 0xc9, 0xc9, 0xca, 0xca, 0xca, 0xca,
	0xca, 0xcb, 0xcb, 0xcb, 0xcb, 0xcb, 0xcb, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc,
	0xcd, 0xcd, 0xcd, 0xcd, 0xcd, 0xcd, 0xce, 0xce, 0xce, 0xce, 0xce, 0xcf,
	0xcf, 0xcf, 0xcf, 0xcf, 0xcf, 0xd0, 0xd0, 0xd0, 0xd0, 0xd0, 0xd1, 0xd1,
	0xd1, 0xd1, 0xd1, 0xd1, 0xd2, 0xd2, 0xd2, 0xd2, 0xd2, 0xd3, 0xd3, 0xd3,
	0xd3, 0xd3, 0xd4, 0xd4, 0xd4, 0xd4, 0xd4, 0xd4, 0xd5, 0xd5, 0xd5, 0xd5,
	0xd5, 0xd6, 0xd6, 0xd6, 0xd6, 0xd6, 0xd6, 0xd7, 0xd7, 0xd7, 0xd7, 0xd7,
	0xd8, 0xd8, 0xd8, 0xd8, 0xd8, 0xd8, 0xd9, 0xd9, 0xd9, 0xd9, 0xd9, 0xda,
	0xda, 0xda, 0xda, 0xda, 0xda, 0xdb, 0xdb, 0xdb, 0xdb, 0xdb, 0xdc, 0xdc,
	0xdc, 0xdc, 0xdc, 0xdd, 0xdd, 0xdd, 0xdd, 0xdd, 0xdd, 0xde, 0xde, 0xde,
	0xde, 0xde, 0xdf, 0xdf, 0xdf, 0xdf, 0xdf, 0xdf, 0xe0, 0xe0, 0xe0, 0xe0,
	0xe0, 0xe1, 0xe1, 0xe1, 0xe1, 0xe1, 0xe1, 0xe2, 0xe2, 0xe2, 0xe2, 0xe2,
	0xe3, 0xe3, 0xe3, 0xe3, 0xe3, 0xe3, 0xe4, 0xe4, 0xe4, 0xe4, 0xe4, 0xe5,
	0xe5, 0xe5, 0xe5, 0xe5, 0xe6, 0xe6, 0xe6, 0xe6, 0xe6, 0xe6, 0xe7, 0xe7,
	0xe7, 0xe7, 0xe7, 0xe8, 0xe8, 0xe8, 0xe8, 0xe8, 0xe8, 0xe9, 0xe9, 0xe9,
	0xe9, 0xe9, 0xea, 0xea, 0xea, 0xea, 0xea, 0xea, 0xeb, 0xeb, 0xeb, 0xeb,
	0xeb, 0xec, 0xec, 0xec, 0xec, 0xec, 0xec, 0xed, 0xed, 0xed, 0xed, 0xed,
	0xee, 0xee, 0xee, 0xee, 0xee, 0xef, 0xef, 0xef, 0xef, 0xef, 0xef, 0xf0,
	0xf0, 0xf0, 0xf0, 0xf0, 0xf1, 0xf1, 0xf1, 0xf1, 0xf1, 0xf1, 0xf2, 0xf2,
	0xf2, 0xf2, 0xf2, 0xf3, 0xf3, 0xf3, 0xf3, 0xf3, 0xf3, 0xf4, 0xf4, 0xf4,
	0xf4, 0xf4, 0xf5, 0xf5, 0xf5, 0xf5, 0xf5, 0xf5, 0xf6, 0xf6, 0xf6, 0xf6,
	0xf6, 0xf7, 0xf7, 0xf7, 0xf7, 0xf7, 0xf8, 0xf8, 0xf8, 0xf8, 0xf8, 0xf8,
	0xf9, 0xf9, 0xf9, 0xf9, 0xf9, 0xfa, 0xfa, 0xfa, 0xfa, 0xfa, 0xfa, 0xfb,
	0xfb, 0xfb, 0xfb, 0xfb, 0xfc, 0xfc, 0xfc, 0xfc, 0xfc, 0xfc, 0xfd, 0xfd,
	0xfd, 0xfd, 0xfd, 0xfe, 0xfe, 0xfe, 0xfe, 0xfe, 0xff,
}

// uint16Output maps a final 0..1388 pixel index to a 16-bit sample.
var uint16Output = [lutSize]uint16{
	0x0000, 0x002f, 0x005e, 0x008d, 0x00bc, 0x00ec, 0x011b, 0x014a, 0x0179, 0x01a8, 0x01d8, 0x0207,
	0x0236, 0x0265, 0x0295, 0x02c4, 0x02f3, 0x0322, 0x0351, 0x0381, 0x03b0, 0x03df, 0x040e, 0x043d,
	0x046d, 0x049c, 0x04cb, 0x04fa, 0x052a, 0x0559, 0x0588, 0x05b7, 0x05e6, 0x0616, 0x0645, 0x0674,
	0x06a3, 0x06d2, 0x0702, 0x0731, 0x0760, 0x078f, 0x07bf, 0x07ee, 0x081d, 0x084c, 0x087b, 0x08ab,
	0x08da, 0x0909, 0x0938, 0x0967, 0x0997, 0x09c6, 0x09f5, 0x0a24, 0x0a54, 0x0a83, 0x0ab2, 0x0ae1,
	0x0b10, 0x0b40, 0x0b6f, 0x0b9e, 0x0bcd, 0x0bfd, 0x0c2c, 0x0c5b, 0x0c8a, 0x0cb9, 0x0ce9, 0x0d18,
	0x0d47, 0x0d76, 0x0da5, 0x0dd5, 0x0e04, 0x0e33, 0x0e62, 0x0e92, 0x0ec1, 0x0ef0, 0x0f1f, 0x0f4e,
	0x0f7e, 0x0fad, 0x0fdc, 0x100b, 0x103a, 0x106a, 0x1099, 0x10c8, 0x10f7, 0x1127, 0x1156, 0x1185,
	0x11b4, 0x11e3, 0x1213, 0x1242, 0x1271, 0x12a0, 0x12cf, 0x12ff, 0x132e, 0x135d, 0x138c, 0x13bc,
	0x13eb, 0x141a, 0x1449, 0x1478, 0x14a8, 0x14d7, 0x1506, 0x1535, 0x1564, 0x1594, 0x15c3, 0x15f2,
	0x1621, 0x1651, 0x1680, 0x16af, 0x16de, 0x170d, 0x173d, 0x176c, 0x179b, 0x17ca, 0x17fa, 0x1829,
	0x1858, 0x1887, 0x18b6, 0x18e6, 0x1915, 0x1944, 0x1973, 0x19a2, 0x19d2, 0x1a01, 0x1a30, 0x1a5f,
	0x1a8f, 0x1abe, 0x1aed, 0x1b1c, 0x1b4b, 0x1b7b, 0x1baa, 0x1bd9, 0x1c08, 0x1c37, 0x1c67, 0x1c96,
	0x1cc5, 0x1cf4, 0x1d24, 0x1d53, 0x1d82, 0x1db1, 0x1de0, 0x1e10, 0x1e3f, 0x1e6e, 0x1e9d, 0x1ecc,
	0x1efc, 0x1f2b, 0x1f5a, 0x1f89, 0x1fb9, 0x1fe8, 0x2017, 0x2046, 0x2075, 0x20a5, 0x20d4, 0x2103,
	0x2132, 0x2161, 0x2191, 0x21c0, 0x21ef, 0x221e, 0x224e, 0x227d, 0x22ac, 0x22db, 0x230a, 0x233a,
	0x2369, 0x2398, 0x23c7, 0x23f7, 0x2426, 0x2455, 0x2484, 0x24b3, 0x24e3, 0x2512, 0x2541, 0x2570,
	0x259f, 0x25cf, 0x25fe, 0x262d, 0x265c, 0x268c, 0x26bb, 0x26ea, 0x2719, 0x2748, 0x2778, 0x27a7,
	0x27d6, 0x2805, 0x2834, 0x2864, 0x2893, 0x28c2, 0x28f1, 0x2921, 0x2950, 0x297f, 0x29ae, 0x29dd,
	0x2a0d, 0x2a3c, 0x2a6b, 0x2a9a, 0x2ac9, 0x2af9, 0x2b28, 0x2b57, 0x2b86, 0x2bb6, 0x2be5, 0x2c14,
	0x2c43, 0x2c72, 0x2ca2, 0x2cd1, 0x2d00, 0x2d2f, 0x2d5e, 0x2d8e, 0x2dbd, 0x2dec, 0x2e1b, 0x2e4b,
	0x2e7a, 0x2ea9, 0x2ed8, 0x2f07, 0x2f37, 0x2f66, 0x2f95, 0x2fc4, 0x2ff4, 0x3023, 0x3052, 0x3081,
	0x30b0, 0x30e0, 0x310f, 0x313e, 0x316d, 0x319c, 0x31cc, 0x31fb, 0x322a, 0x3259, 0x3289, 0x32b8,
	0x32e7, 0x3316, 0x3345, 0x3375, 0x33a4, 0x33d3, 0x3402, 0x3431, 0x3461, 0x3490, 0x34bf, 0x34ee,
	0x351e, 0x354d, 0x357c, 0x35ab, 0x35da, 0x360a, 0x3639, 0x3668, 0x3697, 0x36c6, 0x36f6, 0x3725,
	0x3754, 0x3783, 0x37b3, 0x37e2, 0x3811, 0x3840, 0x386f, 0x389f, 0x38ce, 0x38fd, 0x392c, 0x395b,
	0x398b, 0x39ba, 0x39e9, 0x3a18, 0x3a48, 0x3a77, 0x3aa6, 0x3ad5, 0x3b04, 0x3b34, 0x3b63, 0x3b92,
	0x3bc1, 0x3bf1, 0x3c20, 0x3c4f, 0x3c7e, 0x3cad, 0x3cdd, 0x3d0c, 0x3d3b, 0x3d6a, 0x3d99, 0x3dc9,
	0x3df8, 0x3e27, 0x3e56, 0x3e86, 0x3eb5, 0x3ee4, 0x3f13, 0x3f42, 0x3f72, 0x3fa1, 0x3fd0, 0x3fff,
	0x402e, 0x405e, 0x408d, 0x40bc, 0x40eb, 0x411b, 0x414a, 0x4179, 0x41a8, 0x41d7, 0x4207, 0x4236,
	0x4265, 0x4294, 0x42c3, 0x42f3, 0x4322, 0x4351, 0x4380, 0x43b0, 0x43df, 0x440e, 0x443d, 0x446c,
	0x449c, 0x44cb, 0x44fa, 0x4529, 0x4558, 0x4588, 0x45b7, 0x45e6, 0x4615, 0x4645, 0x4674, 0x46a3,
	0x46d2, 0x4701, 0x4731, 0x4760, 0x478f, 0x47be, 0x47ee, 0x481d, 0x484c, 0x487b, 0x48aa, 0x48da,
	0x4909, 0x4938, 0x4967, 0x4996, 0x49c6, 0x49f5, 0x4a24, 0x4a53, 0x4a83, 0x4ab2, 0x4ae1, 0x4b10,
	0x4b3f, 0x4b6f, 0x4b9e, 0x4bcd, 0x4bfc, 0x4c2b, 0x4c5b, 0x4c8a, 0x4cb9, 0x4ce8, 0x4d18, 0x4d47,
	0x4d76, 0x4da5, 0x4dd4, 0x4e04, 0x4e33, 0x4e62, 0x4e91, 0x4ec0, 0x4ef0, 0x4f1f, 0x4f4e, 0x4f7d,
	0x4fad, 0x4fdc, 0x500b, 0x503a, 0x5069, 0x5099, 0x50c8, 0x50f7, 0x5126, 0x5155, 0x5185, 0x51b4,
	0x51e3, 0x5212, 0x5242, 0x5271, 0x52a0, 0x52cf, 0x52fe, 0x532e, 0x535d, 0x538c, 0x53bb, 0x53eb,
	0x541a, 0x5449, 0x5478, 0x54a7, 0x54d7, 0x5506, 0x5535, 0x5564, 0x5593, 0x55c3, 0x55f2, 0x5621,
	0x5650, 0x5680, 0x56af, 0x56de, 0x570d, 0x573c, 0x576c, 0x579b, 0x57ca, 0x57f9, 0x5828, 0x5858,
	0x5887, 0x58b6, 0x58e5, 0x5915, 0x5944, 0x5973, 0x59a2, 0x59d1, 0x5a01, 0x5a30, 0x5a5f, 0x5a8e,
	0x5abd, 0x5aed, 0x5b1c, 0x5b4b, 0x5b7a, 0x5baa, 0x5bd9, 0x5c08, 0x5c37, 0x5c66, 0x5c96, 0x5cc5,
	0x5cf4, 0x5d23, 0x5d53, 0x5d82, 0x5db1, 0x5de0, 0x5e0f, 0x5e3f, 0x5e6e, 0x5e9d, 0x5ecc, 0x5efb,
	0x5f2b, 0x5f5a, 0x5f89, 0x5fb8, 0x5fe8, 0x6017, 0x6046, 0x6075, 0x60a4, 0x60d4, 0x6103, 0x6132,
	0x6161, 0x6190, 0x61c0, 0x61ef, 0x621e, 0x624d, 0x627d, 0x62ac, 0x62db, 0x630a, 0x6339, 0x6369,
	0x6398, 0x63c7, 0x63f6, 0x6425, 0x6455, 0x6484, 0x64b3, 0x64e2, 0x6512, 0x6541, 0x6570, 0x659f,
	0x65ce, 0x65fe, 0x662d, 0x665c, 0x668b, 0x66ba, 0x66ea, 0x6719, 0x6748, 0x6777, 0x67a7, 0x67d6,
	0x6805, 0x6834, 0x6863, 0x6893, 0x68c2, 0x68f1, 0x6920, 0x6950, 0x697f, 0x69ae, 0x69dd, 0x6a0c,
	0x6a3c, 0x6a6b, 0x6a9a, 0x6ac9, 0x6af8, 0x6b28, 0x6b57, 0x6b86, 0x6bb5, 0x6be5, 0x6c14, 0x6c43,
	0x6c72, 0x6ca1, 0x6cd1, 0x6d00, 0x6d2f, 0x6d5e, 0x6d8d, 0x6dbd, 0x6dec, 0x6e1b, 0x6e4a, 0x6e7a,
	0x6ea9, 0x6ed8, 0x6f07, 0x6f36, 0x6f66, 0x6f95, 0x6fc4, 0x6ff3, 0x7022, 0x7052, 0x7081, 0x70b0,
	0x70df, 0x710f, 0x713e, 0x716d, 0x719c, 0x71cb, 0x71fb, 0x722a, 0x7259, 0x7288, 0x72b7, 0x72e7,
	0x7316, 0x7345, 0x7374, 0x73a4, 0x73d3, 0x7402, 0x7431, 0x7460, 0x7490, 0x74bf, 0x74ee, 0x751d,
	0x754d, 0x757c, 0x75ab, 0x75da, 0x7609, 0x7639, 0x7668, 0x7697, 0x76c6, 0x76f5, 0x7725, 0x7754,
	0x7783, 0x77b2, 0x77e2, 0x7811, 0x7840, 0x786f, 0x789e, 0x78ce, 0x78fd, 0x792c, 0x795b, 0x798a,
	0x79ba, 0x79e9, 0x7a18, 0x7a47, 0x7a77, 0x7aa6, 0x7ad5, 0x7b04, 0x7b33, 0x7b63, 0x7b92, 0x7bc1,
	0x7bf0, 0x7c1f, 0x7c4f, 0x7c7e, 0x7cad, 0x7cdc, 0x7d0c, 0x7d3b, 0x7d6a, 0x7d99, 0x7dc8, 0x7df8,
	0x7e27, 0x7e56, 0x7e85, 0x7eb4, 0x7ee4, 0x7f13, 0x7f42, 0x7f71, 0x7fa1, 0x7fd0, 0x7fff, 0x802e,
	0x805d, 0x808d, 0x80bc, 0x80eb, 0x811a, 0x814a, 0x8179, 0x81a8, 0x81d7, 0x8206, 0x8236, 0x8265,
	0x8294, 0x82c3, 0x82f2, 0x8322, 0x8351, 0x8380, 0x83af, 0x83df, 0x840e, 0x843d, 0x846c, 0x849b,
	0x84cb, 0x84fa, 0x8529, 0x8558, 0x8587, 0x85b7, 0x85e6, 0x8615, 0x8644, 0x8674, 0x86a3, 0x86d2,
	0x8701, 0x8730, 0x8760, 0x878f, 0x87be, 0x87ed, 0x881c, 0x884c, 0x887b, 0x88aa, 0x88d9, 0x8909,
	0x8938, 0x8967, 0x8996, 0x89c5, 0x89f5, 0x8a24, 0x8a53, 0x8a82, 0x8ab1, 0x8ae1, 0x8b10, 0x8b3f,
	0x8b6e, 0x8b9e, 0x8bcd, 0x8bfc, 0x8c2b, 0x8c5a, 0x8c8a, 0x8cb9, 0x8ce8, 0x8d17, 0x8d47, 0x8d76,
	0x8da5, 0x8dd4, 0x8e03, 0x8e33, 0x8e62, 0x8e91, 0x8ec0, 0x8eef, 0x8f1f, 0x8f4e, 0x8f7d, 0x8fac,
	0x8fdc, 0x900b, 0x903a, 0x9069, 0x9098, 0x90c8, 0x90f7, 0x9126, 0x9155, 0x9184, 0x91b4, 0x91e3,
	0x9212, 0x9241, 0x9271, 0x92a0, 0x92cf, 0x92fe, 0x932d, 0x935d, 0x938c, 0x93bb, 0x93ea, 0x9419,
	0x9449, 0x9478, 0x94a7, 0x94d6, 0x9506, 0x9535, 0x9564, 0x9593, 0x95c2, 0x95f2, 0x9621, 0x9650,
	0x967f, 0x96ae, 0x96de, 0x970d, 0x973c, 0x976b, 0x979b, 0x97ca, 0x97f9, 0x9828, 0x9857, 0x9887,
	0x98b6, 0x98e5, 0x9914, 0x9944, 0x9973, 0x99a2, 0x99d1, 0x9a00, 0x9a30, 0x9a5f, 0x9a8e, 0x9abd,
	0x9aec, 0x9b1c, 0x9b4b, 0x9b7a, 0x9ba9, 0x9bd9, 0x9c08, 0x9c37, 0x9c66, 0x9c95, 0x9cc5, 0x9cf4,
	0x9d23, 0x9d52, 0x9d81, 0x9db1, 0x9de0, 0x9e0f, 0x9e3e, 0x9e6e, 0x9e9d, 0x9ecc, 0x9efb, 0x9f2a,
	0x9f5a, 0x9f89, 0x9fb8, 0x9fe7, 0xa016, 0xa046, 0xa075, 0xa0a4, 0xa0d3, 0xa103, 0xa132, 0xa161,
	0xa190, 0xa1bf, 0xa1ef, 0xa21e, 0xa24d, 0xa27c, 0xa2ab, 0xa2db, 0xa30a, 0xa339, 0xa368, 0xa398,
	0xa3c7, 0xa3f6, 0xa425, 0xa454, 0xa484, 0xa4b3, 0xa4e2, 0xa511, 0xa541, 0xa570, 0xa59f, 0xa5ce,
	0xa5fd, 0xa62d, 0xa65c, 0xa68b, 0xa6ba, 0xa6e9, 0xa719, 0xa748, 0xa777, 0xa7a6, 0xa7d6, 0xa805,
	0xa834, 0xa863, 0xa892, 0xa8c2, 0xa8f1, 0xa920, 0xa94f, 0xa97e, 0xa9ae, 0xa9dd, 0xaa0c, 0xaa3b,
	0xaa6b, 0xaa9a, 0xaac9, 0xaaf8, 0xab27, 0xab57, 0xab86, 0xabb5, 0xabe4, 0xac13, 0xac43, 0xac72,
	0xaca1, 0xacd0, 0xad00, 0xad2f, 0xad5e, 0xad8d, 0xadbc, 0xadec, 0xae1b, 0xae4a, 0xae79, 0xaea9,
	0xaed8, 0xaf07, 0xaf36, 0xaf65, 0xaf95, 0xafc4, 0xaff3, 0xb022, 0xb051, 0xb081, 0xb0b0, 0xb0df,
	0xb10e, 0xb13e, 0xb16d, 0xb19c, 0xb1cb, 0xb1fa, 0xb22a, 0xb259, 0xb288, 0xb2b7, 0xb2e6, 0xb316,
	0xb345, 0xb374, 0xb3a3, 0xb3d3, 0xb402, 0xb431, 0xb460, 0xb48f, 0xb4bf, 0xb4ee, 0xb51d, 0xb54c,
	0xb57b, 0xb5ab, 0xb5da, 0xb609, 0xb638, 0xb668, 0xb697, 0xb6c6, 0xb6f5, 0xb724, 0xb754, 0xb783,
	0xb7b2, 0xb7e1, 0xb810, 0xb840, 0xb86f, 0xb89e, 0xb8cd, 0xb8fd, 0xb92c, 0xb95b, 0xb98a, 0xb9b9,
	0xb9e9, 0xba18, 0xba47, 0xba76, 0xbaa6, 0xbad5, 0xbb04, 0xbb33, 0xbb62, 0xbb92, 0xbbc1, 0xbbf0,
	0xbc1f, 0xbc4e, 0xbc7e, 0xbcad, 0xbcdc, 0xbd0b, 0xbd3b, 0xbd6a, 0xbd99, 0xbdc8, 0xbdf7, 0xbe27,
	0xbe56, 0xbe85, 0xbeb4, 0xbee3, 0xbf13, 0xbf42, 0xbf71, 0xbfa0, 0xbfd0, 0xbfff, 0xc02e, 0xc05d,
	0xc08c, 0xc0bc, 0xc0eb, 0xc11a, 0xc149, 0xc178, 0xc1a8, 0xc1d7, 0xc206, 0xc235, 0xc265, 0xc294,
	0xc2c3, 0xc2f2, 0xc321, 0xc351, 0xc380, 0xc3af, 0xc3de, 0xc40d, 0xc43d, 0xc46c, 0xc49b, 0xc4ca,
	0xc4fa, 0xc529, 0xc558, 0xc587, 0xc5b6, 0xc5e6, 0xc615, 0xc644, 0xc673, 0xc6a3, 0xc6d2, 0xc701,
	0xc730, 0xc75f, 0xc78f, 0xc7be, 0xc7ed, 0xc81c, 0xc84b, 0xc87b, 0xc8aa, 0xc8d9, 0xc908, 0xc938,
	0xc967, 0xc996, 0xc9c5, 0xc9f4, 0xca24, 0xca53, 0xca82, 0xcab1, 0xcae0, 0xcb10, 0xcb3f, 0xcb6e,
	0xcb9d, 0xcbcd, 0xcbfc, 0xcc2b, 0xcc5a, 0xcc89, 0xccb9, 0xcce8, 0xcd17, 0xcd46, 0xcd75, 0xcda5,
	0xcdd4, 0xce03, 0xce32, 0xce62, 0xce91, 0xcec0, 0xceef, 0xcf1e, 0xcf4e, 0xcf7d, 0xcfac, 0xcfdb,
	0xd00a, 0xd03a, 0xd069, 0xd098, 0xd0c7, 0xd0f7, 0xd126, 0xd155, 0xd184, 0xd1b3, 0xd1e3, 0xd212,
	0xd241, 0xd270, 0xd2a0, 0xd2cf, 0xd2fe, 0xd32d, 0xd35c, 0xd38c, 0xd3bb, 0xd3ea, 0xd419, 0xd448,
	0xd478, 0xd4a7, 0xd4d6, 0xd505, 0xd535, 0xd564, 0xd593, 0xd5c2, 0xd5f1, 0xd621, 0xd650, 0xd67f,
	0xd6ae, 0xd6dd, 0xd70d, 0xd73c, 0xd76b, 0xd79a, 0xd7ca, 0xd7f9, 0xd828, 0xd857, 0xd886, 0xd8b6,
	0xd8e5, 0xd914, 0xd943, 0xd972, 0xd9a2, 0xd9d1, 0xda00, 0xda2f, 0xda5f, 0xda8e, 0xdabd, 0xdaec,
	0xdb1b, 0xdb4b, 0xdb7a, 0xdba9, 0xdbd8, 0xdc07, 0xdc37, 0xdc66, 0xdc95, 0xdcc4, 0xdcf4, 0xdd23,
	0xdd52, 0xdd81, 0xddb0, 0xdde0, 0xde0f, 0xde3e, 0xde6d, 0xde9d, 0xdecc, 0xdefb, 0xdf2a, 0xdf59,
	0xdf89, 0xdfb8, 0xdfe7, 0xe016, 0xe045, 0xe075, 0xe0a4, 0xe0d3, 0xe102, 0xe132, 0xe161, 0xe190,
	0xe1bf, 0xe1ee, 0xe21e, 0xe24d, 0xe27c, 0xe2ab, 0xe2da, 0xe30a, 0xe339, 0xe368, 0xe397, 0xe3c7,
	0xe3f6, 0xe425, 0xe454, 0xe483, 0xe4b3, 0xe4e2, 0xe511, 0xe540, 0xe56f, 0xe59f, 0xe5ce, 0xe5fd,
	0xe62c, 0xe65c, 0xe68b, 0xe6ba, 0xe6e9, 0xe718, 0xe748, 0xe777, 0xe7a6, 0xe7d5, 0xe804, 0xe834,
	0xe863, 0xe892, 0xe8c1, 0xe8f1, 0xe920, 0xe94f, 0xe97e, 0xe9ad, 0xe9dd, 0xea0c, 0xea3b, 0xea6a,
	0xea9a, 0xeac9, 0xeaf8, 0xeb27, 0xeb56, 0xeb86, 0xebb5, 0xebe4, 0xec13, 0xec42, 0xec72, 0xeca1,
	0xecd0, 0xecff, 0xed2f, 0xed5e, 0xed8d, 0xedbc, 0xedeb, 0xee1b, 0xee4a, 0xee79, 0xeea8, 0xeed7,
	0xef07, 0xef36, 0xef65, 0xef94, 0xefc4, 0xeff3, 0xf022, 0xf051, 0xf080, 0xf0b0, 0xf0df, 0xf10e,
	0xf13d, 0xf16c, 0xf19c, 0xf1cb, 0xf1fa, 0xf229, 0xf259, 0xf288, 0xf2b7, 0xf2e6, 0xf315, 0xf345,
	0xf374, 0xf3a3, 0xf3d2, 0xf401, 0xf431, 0xf460, 0xf48f, 0xf4be, 0xf4ee, 0xf51d, 0xf54c, 0xf57b,
	0xf5aa, 0xf5da, 0xf609, 0xf638, 0xf667, 0xf697, 0xf6c6, 0xf6f5, 0xf724, 0xf753, 0xf783, 0xf7b2,
	0xf7e1, 0xf810, 0xf83f, 0xf86f, 0xf89e, 0xf8cd, 0xf8fc, 0xf92c, 0xf95b, 0xf98a, 0xf9b9, 0xf9e8,
	0xfa18, 0xfa47, 0xfa76, 0xfaa5, 0xfad4, 0xfb04, 0xfb33, 0xfb62, 0xfb91, 0xfbc1, 0xfbf0, 0xfc1f,
	0xfc4e, 0xfc7d, 0xfcad, 0xfcdc, 0xfd0b, 0xfd3a, 0xfd69, 0xfd99, 0xfdc8, 0xfdf7, 0xfe26, 0xfe56,
	0xfe85, 0xfeb4, 0xfee3, 0xff12, 0xff42, 0xff71, 0xffa0, 0xffcf, 0xffff,
}

// floatOutput maps a final 0..1388 pixel index to a 0..1 float sample.
var floatOutput = [lutSize]float32{
	0.000000, 0.000720, 0.001441, 0.002161, 0.002882, 0.003602, 0.004323, 0.005043,
	0.005764, 0.006484, 0.007205, 0.007925, 0.008646, 0.009366, 0.010086, 0.010807,
	0.011527, 0.012248, 0.012968, 0.013689, 0.014409, 0.015130, 0.015850, 0.016571,
	0.017291, 0.018012, 0.018732, 0.019452, 0.020173, 0.020893, 0.021614, 0.022334,
	0.023055, 0.023775, 0.024496, 0.025216, 0.025937, 0.026657, 0.027378, 0.028098,
	0.028818, 0.029539, 0.030259, 0.030980, 0.031700, 0.032421, 0.033141, 0.033862,
	0.034582, 0.035303, 0.036023, 0.036744, 0.037464, 0.038184, 0.038905, 0.039625,
	0.040346, 0.041066, 0.041787, 0.042507, 0.043228, 0.043948, 0.044669, 0.045389,
	0.046110, 0.046830, 0.047550, 0.048271, 0.048991, 0.049712, 0.050432, 0.051153,
	0.051873, 0.052594, 0.053314, 0.054035, 0.054755, 0.055476, 0.056196, 0.056916,
	0.057637, 0.058357, 0.059078, 0.059798, 0.060519, 0.061239, 0.061960, 0.062680,
	0.063401, 0.064121, 0.064842, 0.065562, 0.066282, 0.067003, 0.067723, 0.068444,
	0.069164, 0.069885, 0.070605, 0.071326, 0.072046, 0.072767, 0.073487, 0.074207,
	0.074928, 0.075648, 0.076369, 0.077089, 0.077810, 0.078530, 0.079251, 0.079971,
	0.080692, 0.081412, 0.082133, 0.082853, 0.083573, 0.084294, 0.085014, 0.085735,
	0.086455, 0.087176, 0.087896, 0.088617, 0.089337, 0.090058, 0.090778, 0.091499,
	0.092219, 0.092939, 0.093660, 0.094380, 0.095101, 0.095821, 0.096542, 0.097262,
	0.097983, 0.098703, 0.099424, 0.100144, 0.100865, 0.101585, 0.102305, 0.103026,
	0.103746, 0.104467, 0.105187, 0.105908, 0.106628, 0.107349, 0.108069, 0.108790,
	0.109510, 0.110231, 0.110951, 0.111671, 0.112392, 0.113112, 0.113833, 0.114553,
	0.115274, 0.115994, 0.116715, 0.117435, 0.118156, 0.118876, 0.119597, 0.120317,
	0.121037, 0.121758, 0.122478, 0.123199, 0.123919, 0.124640, 0.125360, 0.126081,
	0.126801, 0.127522, 0.128242, 0.128963, 0.129683, 0.130403, 0.131124, 0.131844,
	0.132565, 0.133285, 0.134006, 0.134726, 0.135447, 0.136167, 0.136888, 0.137608,
	0.138329, 0.139049, 0.139769, 0.140490, 0.141210, 0.141931, 0.142651, 0.143372,
	0.144092, 0.144813, 0.145533, 0.146254, 0.146974, 0.147695, 0.148415, 0.149135,
	0.149856, 0.150576, 0.151297, 0.152017, 0.152738, 0.153458, 0.154179, 0.154899,
	0.155620, 0.156340, 0.157061, 0.157781, 0.158501, 0.159222, 0.159942, 0.160663,
	0.161383, 0.162104, 0.162824, 0.163545, 0.164265, 0.164986, 0.165706, 0.166427,
	0.167147, 0.167867, 0.168588, 0.169308, 0.170029, 0.170749, 0.171470, 0.172190,
	0.172911, 0.173631, 0.174352, 0.175072, 0.175793, 0.176513, 0.177233, 0.177954,
	0.178674, 0.179395, 0.180115, 0.180836, 0.181556, 0.182277, 0.182997, 0.183718,
	0.184438, 0.185159, 0.185879, 0.186599, 0.187320, 0.188040, 0.188761, 0.189481,
	0.190202, 0.190922, 0.191643, 0.192363, 0.193084, 0.193804, 0.194524, 0.195245,
	0.195965, 0.196686, 0.197406, 0.198127, 0.198847, 0.199568, 0.200288, 0.201009,
	0.201729, 0.202450, 0.203170, 0.203890, 0.204611, 0.205331, 0.206052, 0.206772,
	0.207493, 0.208213, 0.208934, 0.209654, 0.210375, 0.211095, 0.211816, 0.212536,
	0.213256, 0.213977, 0.214697, 0.215418, 0.216138, 0.216859, 0.217579, 0.218300,
	0.219020, 0.219741, 0.220461, 0.221182, 0.221902, 0.222622, 0.223343, 0.224063,
	0.224784, 0.225504, 0.226225, 0.226945, 0.227666, 0.228386, 0.229107, 0.229827,
	0.230548, 0.231268, 0.231988, 0.232709, 0.233429, 0.234150, 0.234870, 0.235591,
	0.236311, 0.237032, 0.237752, 0.238473, 0.239193, 0.239914, 0.240634, 0.241354,
	0.242075, 0.242795, 0.243516, 0.244236, 0.244957, 0.245677, 0.246398, 0.247118,
	0.247839, 0.248559, 0.249280, 0.250000, 0.250720, 0.251441, 0.252161, 0.252882,
	0.253602, 0.254323, 0.255043, 0.255764, 0.256484, 0.257205, 0.257925, 0.258646,
	0.259366, 0.260086, 0.260807, 0.261527, 0.262248, 0.262968, 0.263689, 0.264409,
	0.265130, 0.265850, 0.266571, 0.267291, 0.268012, 0.268732, 0.269452, 0.270173,
	0.270893, 0.271614, 0.272334, 0.273055, 0.273775, 0.274496, 0.275216, 0.275937,
	0.276657, 0.277378, 0.278098, 0.278818, 0.279539, 0.280259, 0.280980, 0.281700,
	0.282421, 0.283141, 0.283862, 0.284582, 0.285303, 0.286023, 0.286744, 0.287464,
	0.288184, 0.288905, 0.289625, 0.290346, 0.291066, 0.291787, 0.292507, 0.293228,
	0.293948, 0.294669, 0.295389, 0.296109, 0.296830, 0.297550, 0.298271, 0.298991,
	0.299712, 0.300432, 0.301153, 0.301873, 0.302594, 0.303314, 0.304035, 0.304755,
	0.305476, 0.306196, 0.306916, 0.307637, 0.308357, 0.309078, 0.309798, 0.310519,
	0.311239, 0.311960, 0.312680, 0.313401, 0.314121, 0.314842, 0.315562, 0.316282,
	0.317003, 0.317723, 0.318444, 0.319164, 0.319885, 0.320605, 0.321326, 0.322046,
	0.322767, 0.323487, 0.324207, 0.324928, 0.325648, 0.326369, 0.327089, 0.327810,
	0.328530, 0.329251, 0.329971, 0.330692, 0.331412, 0.332133, 0.332853, 0.333573,
	0.334294, 0.335014, 0.335735, 0.336455, 0.337176, 0.337896, 0.338617, 0.339337,
	0.340058, 0.340778, 0.341499, 0.342219, 0.342939, 0.343660, 0.344380, 0.345101,
	0.345821, 0.346542, 0.347262, 0.347983, 0.348703, 0.349424, 0.350144, 0.350865,
	0.351585, 0.352305, 0.353026, 0.353746, 0.354467, 0.355187, 0.355908, 0.356628,
	0.357349, 0.358069, 0.358790, 0.359510, 0.360231, 0.360951, 0.361671, 0.362392,
	0.363112, 0.363833, 0.364553, 0.365274, 0.365994, 0.366715, 0.367435, 0.368156,
	0.368876, 0.369597, 0.370317, 0.371037, 0.371758, 0.372478, 0.373199, 0.373919,
	0.374640, 0.375360, 0.376081, 0.376801, 0.377522, 0.378242, 0.378963, 0.379683,
	0.380403, 0.381124, 0.381844, 0.382565, 0.383285, 0.384006, 0.384726, 0.385447,
	0.386167, 0.386888, 0.387608, 0.388329, 0.389049, 0.389769, 0.390490, 0.391210,
	0.391931, 0.392651, 0.393372, 0.394092, 0.394813, 0.395533, 0.396254, 0.396974,
	0.397695, 0.398415, 0.399135, 0.399856, 0.400576, 0.401297, 0.402017, 0.402738,
	0.403458, 0.404179, 0.404899, 0.405620, 0.406340, 0.407061, 0.407781, 0.408501,
	0.409222, 0.409942, 0.410663, 0.411383, 0.412104, 0.412824, 0.413545, 0.414265,
	0.414986, 0.415706, 0.416427, 0.417147, 0.417867, 0.418588, 0.419308, 0.420029,
	0.420749, 0.421470, 0.422190, 0.422911, 0.423631, 0.424352, 0.425072, 0.425793,
	0.426513, 0.427233, 0.427954, 0.428674, 0.429395, 0.430115, 0.430836, 0.431556,
	0.432277, 0.432997, 0.433718, 0.434438, 0.435158, 0.435879, 0.436599, 0.437320,
	0.438040, 0.438761, 0.439481, 0.440202, 0.440922, 0.441643, 0.442363, 0.443084,
	0.443804, 0.444524, 0.445245, 0.445965, 0.446686, 0.447406, 0.448127, 0.448847,
	0.449568, 0.450288, 0.451009, 0.451729, 0.452450, 0.453170, 0.453891, 0.454611,
	0.455331, 0.456052, 0.456772, 0.457493, 0.458213, 0.458934, 0.459654, 0.460375,
	0.461095, 0.461816, 0.462536, 0.463256, 0.463977, 0.464697, 0.465418, 0.466138,
	0.466859, 0.467579, 0.468300, 0.469020, 0.469741, 0.470461, 0.471182, 0.471902,
	0.472622, 0.473343, 0.474063, 0.474784, 0.475504, 0.476225, 0.476945, 0.477666,
	0.478386, 0.479107, 0.479827, 0.480548, 0.481268, 0.481988, 0.482709, 0.483429,
	0.484150, 0.484870, 0.485591, 0.486311, 0.487032, 0.487752, 0.488473, 0.489193,
	0.489914, 0.490634, 0.491354, 0.492075, 0.492795, 0.493516, 0.494236, 0.494957,
	0.495677, 0.496398, 0.497118, 0.497839, 0.498559, 0.499280, 0.500000, 0.500720,
	0.501441, 0.502161, 0.502882, 0.503602, 0.504323, 0.505043, 0.505764, 0.506484,
	0.507205, 0.507925, 0.508646, 0.509366, 0.510086, 0.510807, 0.511527, 0.512248,
	0.512968, 0.513689, 0.514409, 0.515130, 0.515850, 0.516571, 0.517291, 0.518012,
	0.518732, 0.519452, 0.520173, 0.520893, 0.521614, 0.522334, 0.523055, 0.523775,
	0.524496, 0.525216, 0.525937, 0.526657, 0.527378, 0.528098, 0.528818, 0.529539,
	0.530259, 0.530980, 0.531700, 0.532421, 0.533141, 0.533862, 0.534582, 0.535303,
	0.536023, 0.536744, 0.537464, 0.538184, 0.538905, 0.539625, 0.540346, 0.541066,
	0.541787, 0.542507, 0.543228, 0.543948, 0.544669, 0.545389, 0.546109, 0.546830,
	0.547550, 0.548271, 0.548991, 0.549712, 0.550432, 0.551153, 0.551873, 0.552594,
	0.553314, 0.554035, 0.554755, 0.555476, 0.556196, 0.556916, 0.557637, 0.558357,
	0.559078, 0.559798, 0.560519, 0.561239, 0.561960, 0.562680, 0.563401, 0.564121,
	0.564842, 0.565562, 0.566282, 0.567003, 0.567723, 0.568444, 0.569164, 0.569885,
	0.570605, 0.571326, 0.572046, 0.572767, 0.573487, 0.574207, 0.574928, 0.575648,
	0.576369, 0.577089, 0.577810, 0.578530, 0.579251, 0.579971, 0.580692, 0.581412,
	0.582133, 0.582853, 0.583573, 0.584294, 0.585014, 0.585735, 0.586455, 0.587176,
	0.587896, 0.588617, 0.589337, 0.590058, 0.590778, 0.591499, 0.592219, 0.592939,
	0.593660, 0.594380, 0.595101, 0.595821, 0.596542, 0.597262, 0.597983, 0.598703,
	0.599424, 0.600144, 0.600865, 0.601585, 0.602305, 0.603026, 0.603746, 0.604467,
	0.605187, 0.605908, 0.606628, 0.607349, 0.608069, 0.608790, 0.609510, 0.610231,
	0.610951, 0.611671, 0.612392, 0.613112, 0.613833, 0.614553, 0.615274, 0.615994,
	0.616715, 0.617435, 0.618156, 0.618876, 0.619597, 0.620317, 0.621037, 0.621758,
	0.622478, 0.623199, 0.623919, 0.624640, 0.625360, 0.626081, 0.626801, 0.627522,
	0.628242, 0.628963, 0.629683, 0.630403, 0.631124, 0.631844, 0.632565, 0.633285,
	0.634006, 0.634726, 0.635447, 0.636167, 0.636888, 0.637608, 0.638329, 0.639049,
	0.639769, 0.640490, 0.641210, 0.641931, 0.642651, 0.643372, 0.644092, 0.644813,
	0.645533, 0.646254, 0.646974, 0.647695, 0.648415, 0.649135, 0.649856, 0.650576,
	0.651297, 0.652017, 0.652738, 0.653458, 0.654179, 0.654899, 0.655620, 0.656340,
	0.657061, 0.657781, 0.658501, 0.659222, 0.659942, 0.660663, 0.661383, 0.662104,
	0.662824, 0.663545, 0.664265, 0.664986, 0.665706, 0.666427, 0.667147, 0.667867,
	0.668588, 0.669308, 0.670029, 0.670749, 0.671470, 0.672190, 0.672911, 0.673631,
	0.674352, 0.675072, 0.675793, 0.676513, 0.677233, 0.677954, 0.678674, 0.679395,
	0.680115, 0.680836, 0.681556, 0.682277, 0.682997, 0.683718, 0.684438, 0.685158,
	0.685879, 0.686599, 0.687320, 0.688040, 0.688761, 0.689481, 0.690202, 0.690922,
	0.691643, 0.692363, 0.693084, 0.693804, 0.694524, 0.695245, 0.695965, 0.696686,
	0.697406, 0.698127, 0.698847, 0.699568, 0.700288, 0.701009, 0.701729, 0.702450,
	0.703170, 0.703891, 0.704611, 0.705331, 0.706052, 0.706772, 0.707493, 0.708213,
	0.708934, 0.709654, 0.710375, 0.711095, 0.711816, 0.712536, 0.713256, 0.713977,
	0.714697, 0.715418, 0.716138, 0.716859, 0.717579, 0.718300, 0.719020, 0.719741,
	0.720461, 0.721182, 0.721902, 0.722622, 0.723343, 0.724063, 0.724784, 0.725504,
	0.726225, 0.726945, 0.727666, 0.728386, 0.729107, 0.729827, 0.730548, 0.731268,
	0.731988, 0.732709, 0.733429, 0.734150, 0.734870, 0.735591, 0.736311, 0.737032,
	0.737752, 0.738473, 0.739193, 0.739914, 0.740634, 0.741354, 0.742075, 0.742795,
	0.743516, 0.744236, 0.744957, 0.745677, 0.746398, 0.747118, 0.747839, 0.748559,
	0.749280, 0.750000, 0.750720, 0.751441, 0.752161, 0.752882, 0.753602, 0.754323,
	0.755043, 0.755764, 0.756484, 0.757205, 0.757925, 0.758646, 0.759366, 0.760086,
	0.760807, 0.761527, 0.762248, 0.762968, 0.763689, 0.764409, 0.765130, 0.765850,
	0.766571, 0.767291, 0.768012, 0.768732, 0.769452, 0.770173, 0.770893, 0.771614,
	0.772334, 0.773055, 0.773775, 0.774496, 0.775216, 0.775937, 0.776657, 0.777378,
	0.778098, 0.778818, 0.779539, 0.780259, 0.780980, 0.781700, 0.782421, 0.783141,
	0.783862, 0.784582, 0.785303, 0.786023, 0.786744, 0.787464, 0.788184, 0.788905,
	0.789625, 0.790346, 0.791066, 0.791787, 0.792507, 0.793228, 0.793948, 0.794669,
	0.795389, 0.796109, 0.796830, 0.797550, 0.798271, 0.798991, 0.799712, 0.800432,
	0.801153, 0.801873, 0.802594, 0.803314, 0.804035, 0.804755, 0.805476, 0.806196,
	0.806916, 0.807637, 0.808357, 0.809078, 0.809798, 0.810519, 0.811239, 0.811960,
	0.812680, 0.813401, 0.814121, 0.814842, 0.815562, 0.816282, 0.817003, 0.817723,
	0.818444, 0.819164, 0.819885, 0.820605, 0.821326, 0.822046, 0.822767, 0.823487,
	0.824207, 0.824928, 0.825648, 0.826369, 0.827089, 0.827810, 0.828530, 0.829251,
	0.829971, 0.830692, 0.831412, 0.832133, 0.832853, 0.833573, 0.834294, 0.835014,
	0.835735, 0.836455, 0.837176, 0.837896, 0.838617, 0.839337, 0.840058, 0.840778,
	0.841499, 0.842219, 0.842939, 0.843660, 0.844380, 0.845101, 0.845821, 0.846542,
	0.847262, 0.847983, 0.848703, 0.849424, 0.850144, 0.850865, 0.851585, 0.852305,
	0.853026, 0.853746, 0.854467, 0.855187, 0.855908, 0.856628, 0.857349, 0.858069,
	0.858790, 0.859510, 0.860231, 0.860951, 0.861671, 0.862392, 0.863112, 0.863833,
	0.864553, 0.865274, 0.865994, 0.866715, 0.867435, 0.868156, 0.868876, 0.869597,
	0.870317, 0.871037, 0.871758, 0.872478, 0.873199, 0.873919, 0.874640, 0.875360,
	0.876081, 0.876801, 0.877522, 0.878242, 0.878963, 0.879683, 0.880403, 0.881124,
	0.881844, 0.882565, 0.883285, 0.884006, 0.884726, 0.885447, 0.886167, 0.886888,
	0.887608, 0.888329, 0.889049, 0.889769, 0.890490, 0.891210, 0.891931, 0.892651,
	0.893372, 0.894092, 0.894813, 0.895533, 0.896254, 0.896974, 0.897695, 0.898415,
	0.899135, 0.899856, 0.900576, 0.901297, 0.902017, 0.902738, 0.903458, 0.904179,
	0.904899, 0.905620, 0.906340, 0.907061, 0.907781, 0.908501, 0.909222, 0.909942,
	0.910663, 0.911383, 0.912104, 0.912824, 0.913545, 0.914265, 0.914986, 0.915706,
	0.916427, 0.917147, 0.917867, 0.918588, 0.919308, 0.920029, 0.920749, 0.921470,
	0.922190, 0.922911, 0.923631, 0.924352, 0.925072, 0.925793, 0.926513, 0.927233,
	0.927954, 0.928674, 0.929395, 0.930115, 0.930836, 0.931556, 0.932277, 0.932997,
	0.933718, 0.934438, 0.935158, 0.935879, 0.936599, 0.937320, 0.938040, 0.938761,
	0.939481, 0.940202, 0.940922, 0.941643, 0.942363, 0.943084, 0.943804, 0.944524,
	0.945245, 0.945965, 0.946686, 0.947406, 0.948127, 0.948847, 0.949568, 0.950288,
	0.951009, 0.951729, 0.952450, 0.953170, 0.953891, 0.954611, 0.955331, 0.956052,
	0.956772, 0.957493, 0.958213, 0.958934, 0.959654, 0.960375, 0.961095, 0.961816,
	0.962536, 0.963256, 0.963977, 0.964697, 0.965418, 0.966138, 0.966859, 0.967579,
	0.968300, 0.969020, 0.969741, 0.970461, 0.971182, 0.971902, 0.972622, 0.973343,
	0.974063, 0.974784, 0.975504, 0.976225, 0.976945, 0.977666, 0.978386, 0.979107,
	0.979827, 0.980548, 0.981268, 0.981988, 0.982709, 0.983429, 0.984150, 0.984870,
	0.985591, 0.986311, 0.987032, 0.987752, 0.988473, 0.989193, 0.989914, 0.990634,
	0.991354, 0.992075, 0.992795, 0.993516, 0.994236, 0.994957, 0.995677, 0.996398,
	0.997118, 0.997839, 0.998559, 0.999280, 1.000000,
}
