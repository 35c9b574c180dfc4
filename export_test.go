package dtunit

// export_test.go exposes package-internal helpers to the external
// _test package, mirroring the teacher's own export_test.go.

func IsLeapExported(year int64) bool { return isLeap(year) }

func DaysFromEpochExported(s DateTimeStruct) int64 { return daysFromEpoch(s) }

func DaysToStructExported(days int64) DateTimeStruct { return daysToStruct(days) }

func DayOfWeekExported(days int64) int { return dayOfWeek(days) }

func BusinessDaysBetweenExported(a, b int64) int64 { return businessDaysBetween(a, b) }

func BusinessDayToDaysExported(v int64) int64 { return businessDayToDays(v) }

func FloorDivExported(a, b int64) int64 { return floorDiv(a, b) }

func FloorModExported(a, b int64) int64 { return floorMod(a, b) }

func MetadataDividesExported(dividend, divisor Metadata, strict bool) bool {
	return metadataDivides(dividend, divisor, strict)
}

func UnitsFactorExported(coarse, fine Unit) (uint64, bool) { return unitsFactor(coarse, fine) }

func StructToValueExported(s DateTimeStruct, meta Metadata) (int64, error) {
	return structToValue(s, meta)
}

func ValueToStructExported(v int64, meta Metadata) (DateTimeStruct, error) {
	return valueToStruct(v, meta)
}

func ConversionFactorExported(src, dst Metadata) (int64, int64, error) {
	return conversionFactor(src, dst)
}
