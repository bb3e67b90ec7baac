// cts256_labels.go - the SP0256-AL2 allophone label table, indexed by the
// 6-bit code the CTS256A-AL2 firmware writes to its SP0256 command port.

package cts256

// sp0256Labels maps allophone code (0-63) to its two/three-letter mnemonic,
// used when the board is configured for text-label output mode.
var sp0256Labels = [64]string{
	"PA1", "PA2", "PA3", "PA4", "PA5", "OY", "AY", "EH",
	"KK3", "PP", "JH", "NN1", "IH", "TT2", "RR1", "AX",
	"MM", "TT1", "DH1", "IY", "EY", "DD1", "UW1", "AO",
	"AA", "YY2", "AE", "HH1", "BB1", "TH", "UH", "UW2",
	"AW", "DD2", "GG3", "VV", "GG1", "SH", "ZH", "RR2",
	"FF", "KK2", "KK1", "ZZ", "NG", "LL", "WW", "XR",
	"WH", "YY1", "CH", "ER1", "ER2", "OW", "DH2", "SS",
	"NN2", "HH2", "OR", "AR", "YR", "GG2", "EL", "BB2",
}
