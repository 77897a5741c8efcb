package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/Chicago")
	if err != nil {
		panic(err)
	}
}

// force the timezone to be central time because season/grad-year math
// works on local meet dates and the servers sometimes come up in UTC,
// which would shift late-night meets into the wrong day
func Now() time.Time {
	return time.Now().In(Location)
}
