package util

func GetAppName() string {
	return "DIPII"
}
