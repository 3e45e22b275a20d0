package planilha

import "time"

// MonthNames nomes dos meses em português, indexados de 1 a 12.
var MonthNames = map[int]string{
	1:  "Janeiro",
	2:  "Fevereiro",
	3:  "Março",
	4:  "Abril",
	5:  "Maio",
	6:  "Junho",
	7:  "Julho",
	8:  "Agosto",
	9:  "Setembro",
	10: "Outubro",
	11: "Novembro",
	12: "Dezembro",
}

// Sundays devolve os domingos do mês em ordem crescente, com hora zerada.
// O chamador valida o intervalo do mês antes.
func Sundays(year, month int) []time.Time {
	var sundays []time.Time
	day := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	for day.Month() == time.Month(month) {
		if day.Weekday() == time.Sunday {
			sundays = append(sundays, day)
		}
		day = day.AddDate(0, 0, 1)
	}
	return sundays
}
