package catalog

import "strconv"

// FormatPrice renders a whole-rupee amount as the storefront displays it:
// rupee sign, Indian digit grouping, no paise. 285000 -> "₹2,85,000".
//
// Grouping is the Indian numbering convention: the last three digits form one
// group, every pair of digits after that forms another.
func FormatPrice(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var grouped []byte
	for i, d := range []byte(head) {
		if i > 0 && (len(head)-i)%2 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	return sign + "₹" + string(grouped) + "," + tail
}
