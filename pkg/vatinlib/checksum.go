package vatinlib

import "github.com/rezonia/vatin-checker/internal/checksum"

// Per-country checks. Each takes the body of a VATIN, without its prefix.
var (
	IsValidAT = checksum.IsValidAT
	IsValidBE = checksum.IsValidBE
	IsValidBG = checksum.IsValidBG
	IsValidCY = checksum.IsValidCY
	IsValidCZ = checksum.IsValidCZ
	IsValidDE = checksum.IsValidDE
	IsValidDK = checksum.IsValidDK
	IsValidEE = checksum.IsValidEE
	IsValidEL = checksum.IsValidEL
	IsValidES = checksum.IsValidES
	IsValidFI = checksum.IsValidFI
	IsValidFR = checksum.IsValidFR
	IsValidGB = checksum.IsValidGB
	IsValidHR = checksum.IsValidHR
	IsValidHU = checksum.IsValidHU
	IsValidIE = checksum.IsValidIE
	IsValidIT = checksum.IsValidIT
	IsValidLT = checksum.IsValidLT
	IsValidLU = checksum.IsValidLU
	IsValidLV = checksum.IsValidLV
	IsValidMT = checksum.IsValidMT
	IsValidNL = checksum.IsValidNL
	IsValidPL = checksum.IsValidPL
	IsValidPT = checksum.IsValidPT
	IsValidRO = checksum.IsValidRO
	IsValidSE = checksum.IsValidSE
	IsValidSI = checksum.IsValidSI
	IsValidSK = checksum.IsValidSK
)

// IsValidGR is the Greek check under its ISO 3166 code.
var IsValidGR = checksum.IsValidEL
