package chart

// commonTimezones подсказки таймзон для формы
var commonTimezones = []string{
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"America/Phoenix",
	"America/Anchorage",
	"Pacific/Honolulu",
	"Europe/London",
	"Europe/Paris",
	"Europe/Berlin",
	"Europe/Rome",
	"Europe/Madrid",
	"Europe/Lisbon",
	"Europe/Zurich",
	"Asia/Tokyo",
	"Asia/Shanghai",
	"Asia/Hong_Kong",
	"Asia/Singapore",
	"Asia/Dubai",
	"Asia/Kolkata",
	"Australia/Sydney",
	"Australia/Melbourne",
	"Pacific/Auckland",
}

// Timezones возвращает список распространённых таймзон для подсказок в форме
func (s *Service) Timezones() []string {
	return commonTimezones
}
