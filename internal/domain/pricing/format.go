package pricing

import "strconv"

// FormatINR renders an integer rupee amount with Indian digit grouping
// (lakh/crore): the last three digits form one group, every two digits after
// that form the next. 2800000 -> "₹28,00,000".
//
// golang.org/x/text/message grouping follows the western thousands pattern
// for the generic locale data we ship, so the lakh/crore split is done here.
func FormatINR(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	grouped := digits
	if len(digits) > 3 {
		head := digits[:len(digits)-3]
		grouped = digits[len(digits)-3:]
		for len(head) > 2 {
			grouped = head[len(head)-2:] + "," + grouped
			head = head[:len(head)-2]
		}
		grouped = head + "," + grouped
	}

	if negative {
		return "-₹" + grouped
	}
	return "₹" + grouped
}
