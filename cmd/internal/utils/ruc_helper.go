package utils

const RUCLength = 11

// IsRUCValid checks a Peruvian RUC: 11 digits with a mod-11 verifying
// digit as published by SUNAT.
func IsRUCValid(ruc string) bool {
	if len(ruc) != RUCLength {
		return false
	}

	if !IsOnlyNumbers(ruc) {
		return false
	}
	return validateRUCDigit(ruc)
}

func validateRUCDigit(ruc string) bool {
	// SUNAT weights for the verifying digit
	weights := []int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

	sum := 0
	for i, weight := range weights {
		// Convert ASCII character to integer ('5' -> 5)
		digit := int(ruc[i] - '0')
		sum += digit * weight
	}

	check := 11 - sum%11
	// 10 and 11 fold back into a single digit
	if check >= 10 {
		check -= 10
	}
	return check == int(ruc[10]-'0')
}
