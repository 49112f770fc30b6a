package domain

// Reason is one selectable rejection reason.
type Reason struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// rejectionReasons is the fixed code to label table. Labels are resolved
// once, at decision time, and stored on the event verbatim.
var rejectionReasons = []Reason{
	{Code: "WRONG_INN", Label: "ИНН указан неверно"},
	{Code: "WRONG_SUPPLIER", Label: "Выбран неверный поставщик"},
	{Code: "NEED_MORE_INFO", Label: "Недостаточно данных, уточните информацию"},
	{Code: "SUPPLIER_NOT_FOUND", Label: "Поставщик отсутствует в справочнике"},
	{Code: "DUPLICATE_REQUEST", Label: "Дубликат заявки"},
}

// Reasons returns the selectable rejection reasons in display order.
func Reasons() []Reason {
	out := make([]Reason, len(rejectionReasons))
	copy(out, rejectionReasons)
	return out
}

// ReasonLabel resolves a reason code to its human label. Unknown codes pass
// through as their own label so ad-hoc reasons are never rejected.
func ReasonLabel(code string) string {
	for _, reason := range rejectionReasons {
		if reason.Code == code {
			return reason.Label
		}
	}
	return code
}
