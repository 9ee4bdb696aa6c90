package calculation

// fixedHolidays recur on the same Gregorian date every year.
var fixedHolidays = map[string]string{
	"01-01": "Tết Dương lịch",
	"04-30": "Ngày Giải phóng miền Nam",
	"05-01": "Quốc tế Lao động",
	"09-02": "Quốc khánh",
}

// movableHolidays follow the lunar calendar or yearly government schedules.
// New years are added here or through a holiday data file.
var movableHolidays = map[string]string{
	// 2024
	"2024-02-08": "Tết Nguyên Đán",
	"2024-02-09": "Tết Nguyên Đán",
	"2024-02-10": "Tết Nguyên Đán",
	"2024-02-11": "Tết Nguyên Đán",
	"2024-02-12": "Tết Nguyên Đán",
	"2024-02-13": "Tết Nguyên Đán",
	"2024-02-14": "Tết Nguyên Đán",
	"2024-04-18": "Giỗ Tổ Hùng Vương",
	"2024-09-03": "Quốc khánh",

	// 2025
	"2025-01-27": "Tết Nguyên Đán",
	"2025-01-28": "Tết Nguyên Đán",
	"2025-01-29": "Tết Nguyên Đán",
	"2025-01-30": "Tết Nguyên Đán",
	"2025-01-31": "Tết Nguyên Đán",
	"2025-04-07": "Giỗ Tổ Hùng Vương",
	"2025-09-01": "Quốc khánh",

	// 2026
	"2026-02-16": "Tết Nguyên Đán",
	"2026-02-17": "Tết Nguyên Đán",
	"2026-02-18": "Tết Nguyên Đán",
	"2026-02-19": "Tết Nguyên Đán",
	"2026-02-20": "Tết Nguyên Đán",
	"2026-04-26": "Giỗ Tổ Hùng Vương",
	"2026-09-01": "Quốc khánh",

	// 2027
	"2027-02-05": "Tết Nguyên Đán",
	"2027-02-06": "Tết Nguyên Đán",
	"2027-02-07": "Tết Nguyên Đán",
	"2027-02-08": "Tết Nguyên Đán",
	"2027-02-09": "Tết Nguyên Đán",
	"2027-04-16": "Giỗ Tổ Hùng Vương",
}
