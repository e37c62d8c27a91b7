package file

import (
	"path"
	"strings"
)

// ArchiveKey dubbing çıktısının arşivdeki anahtarı: <dubbing_id>/<lang>.mp3
func ArchiveKey(dubbingID, lang string) string {
	cleanID := strings.Trim(path.Clean("/"+dubbingID), "/")
	return cleanID + "/" + strings.ToLower(lang) + ".mp3"
}

func DownloadName(dubbingID, lang string) string {
	return "dubbed_" + dubbingID + "_" + lang + ".mp3"
}
