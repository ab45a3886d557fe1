package utils

import "time"

// Yesterday devolve o dia anterior, à meia-noite UTC
func Yesterday(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day()-1, 0, 0, 0, 0, time.UTC)
}
