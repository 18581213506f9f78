package regex

import (
	"context"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/KromDaniel/concepts/internal/demo"
	"github.com/KromDaniel/concepts/internal/logging"
	"github.com/KromDaniel/concepts/pkg/regexkit"
)

// SpecialChars matches a whole string holding at least one of %, # or &.
const SpecialChars = `([a-z]*[%#&]+[a-z]*)+`

// RandomStrings are the inputs of the speed comparison.
var RandomStrings = []string{
	"oyypplb", "xmnff%n", "jdtx", "jgqlhw%t", "ukaqb", "jccpi", "sgwc", "fyo%x", "x#", "gwmne",
	"uni&", "jciwy", "gkmpk", "efrd%du", "nubnhrva", "mojag%ff", "ctg&h", "nvkkya", "ekmp&cs", "ttad%h",
	"qjpxiok", "eyl", "mabd", "rghtk&ss", "fam", "pwxswh&b", "drwlnfu", "sifc&m", "wdutrs", "rb%c",
	"c%r", "ndmce%", "cvvfa%f", "ymex&bm", "&a", "fvpg", "pp&m", "nwsh&", "vft%ln", "sg%o",
	"xwiv#bx", "qfx", "vvkqss", "vpebmmd", "er%m", "vxrt", "clksvd", "twgo%k", "camaxvkon", "div",
	"fxdvi#", "oknjic&", "aqn", "upxo&", "mhfr%d", "kj#h", "ffj%om", "ekayvgbhr", "r&", "x&js",
	"eee&", "mw", "tigkm#", "o", "sv%", "p", "kbck", "dbsyf", "yd&u", "ddasjdsad&dsjda##jhdajsd%jnjsad%",
	"hdkbr", "qyc", "pl", "q", "xfsrx", "m%", "kltdx", "edgy&sr", "bkfdk%it", "h",
	"bqlqa", "eo&", "be%q", "gghf", "vad", "rrhv", "qniy", "q", "qn&wi", "wapx%kf",
	"egtxra%u", "mjo&b", "sr", "vlyet&g", "tykdnxg%tj", "acbub", "qjrku", "iax&or", "nau", "dmrdt",
}

// CountRecompiling counts the strings matching expr, compiling expr once
// per string.
func CountRecompiling(expr string, inputs []string) (int, error) {
	count := 0
	for _, s := range inputs {
		ok, err := regexkit.MatchString(expr, s)
		if err != nil {
			return 0, err
		}
		if ok {
			count++
		}
	}
	return count, nil
}

// CountCompiled counts the strings matching pattern with one matcher that
// is rebound to each input.
func CountCompiled(pattern *regexkit.Pattern, inputs []string) (int, error) {
	m := pattern.Matcher("")
	count := 0
	for _, s := range inputs {
		ok, err := m.ResetInput(s).Matches()
		if err != nil {
			return 0, err
		}
		if ok {
			count++
		}
	}
	return count, nil
}

// timed repeats count the given number of rounds and returns the last
// result with the total time taken.
func timed(ctx context.Context, rounds int, count func() (int, error)) (int, time.Duration, error) {
	start := time.Now()
	n := 0
	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}
		var err error
		if n, err = count(); err != nil {
			return 0, 0, err
		}
	}
	return n, time.Since(start), nil
}

// RunSpeed counts RandomStrings with special characters both ways, the
// configured number of rounds each, and compares the time taken.
func RunSpeed(ctx context.Context, w io.Writer) error {
	p := demo.NewPrinter(w)
	logger := logging.FromContext(ctx)
	settings := demo.SettingsFrom(ctx)

	pattern, err := regexkit.Compile(SpecialChars, regexkit.WithTimeout(settings.MatchTimeout))
	if err != nil {
		return err
	}
	report, err := pattern.Analyze()
	if err != nil {
		return err
	}
	if report.CatastrophicRisk {
		p.Printf("note: %s nests quantifiers and can backtrack catastrophically on long inputs\n", SpecialChars)
	}

	logger.Section("speed")
	usual, usualTime, err := timed(ctx, settings.Rounds, func() (int, error) {
		return CountRecompiling(SpecialChars, RandomStrings)
	})
	if err != nil {
		return err
	}
	logger.Debug("recompiling", "rounds", settings.Rounds, "elapsed", usualTime)

	efficient, efficientTime, err := timed(ctx, settings.Rounds, func() (int, error) {
		return CountCompiled(pattern, RandomStrings)
	})
	if err != nil {
		return err
	}
	logger.Debug("compiled once", "rounds", settings.Rounds, "elapsed", efficientTime)

	p.Printf("Strings with a special character: %d (recompiling), %d (compiled once)\n", usual, efficient)
	p.Printf("Rounds: %s\n", humanize.Comma(int64(settings.Rounds)))
	p.Printf("Usual way time taken: %s\n", usualTime.Round(time.Microsecond))
	p.Printf("Efficient way time taken: %s\n", efficientTime.Round(time.Microsecond))
	p.Printf("Difference: %s\n", (usualTime - efficientTime).Round(time.Microsecond))
	if efficientTime > 0 {
		p.Printf("Efficient way is %.1f times faster than the usual way in this case\n",
			float64(usualTime)/float64(efficientTime))
	}
	return p.Err()
}
