package analyze

import (
	"fmt"
	"os"

	"github.com/jjtimmons/seqan/config"
	"github.com/jjtimmons/seqan/internal/seqan"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags contains parsed cobra Flags like "id", "frame", "out", etc that are
// used by multiple commands.
type Flags struct {
	// path to the input FASTA file
	in string

	// identifier, or identifier prefix, of a single sequence
	id string

	// whether id must match an identifier exactly
	exact bool

	// reading frame, 1 to 3
	frame int

	// whether to select the shortest or longest
	dir seqan.Direction

	// whether to list every tied identifier
	ties bool

	// whether to ask before listing tied identifiers
	interactive bool

	// the name of the file to write JSON output to
	out string

	// length of the substrings counted by repeat
	length int

	// a single substring to count
	substring string

	// whether to list every substring count
	all bool
}

// parseCmdFlags gathers the input path, identifier, frame etc from a cobra
// cmd object. Flags a command doesn't define keep their zero value, or the
// settings file's default.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config) {
	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to load settings", "err", err)
	}
	setLogLevel(conf)

	if len(args) < 1 {
		cmd.Help()
		logger.Fatal("no FASTA file passed")
	}

	flags, err := newFlags(cmd.Flags(), args[0], conf)
	if err != nil {
		cmd.Help()
		logger.Fatal(err)
	}
	logger.Debug("parsed flags", "cmd", cmd.Name(), "in", flags.in, "id", flags.id, "frame", flags.frame, "direction", flags.dir)

	return flags, conf
}

// newFlags reads a command's flag set into Flags.
func newFlags(fs *pflag.FlagSet, in string, conf *config.Config) (*Flags, error) {
	var err error
	flags := &Flags{
		in:     in,
		frame:  conf.ORF.Frame,
		length: conf.Repeat.Length,
		dir:    seqan.Longest,
	}

	if flags.id, err = stringFlag(fs, "id"); err != nil {
		return nil, err
	}
	if flags.exact, err = boolFlag(fs, "exact"); err != nil {
		return nil, err
	}
	if flags.ties, err = boolFlag(fs, "ties"); err != nil {
		return nil, err
	}
	if flags.interactive, err = boolFlag(fs, "interactive"); err != nil {
		return nil, err
	}
	if flags.out, err = stringFlag(fs, "out"); err != nil {
		return nil, err
	}
	if flags.substring, err = stringFlag(fs, "substring"); err != nil {
		return nil, err
	}
	if flags.all, err = boolFlag(fs, "all"); err != nil {
		return nil, err
	}

	shortest, err := boolFlag(fs, "shortest")
	if err != nil {
		return nil, err
	}
	if shortest {
		flags.dir = seqan.Shortest
	}

	if fs.Changed("frame") {
		if flags.frame, err = fs.GetInt("frame"); err != nil {
			return nil, fmt.Errorf("failed to parse frame flag: %v", err)
		}
	}

	// a substring sets the length unless one was passed explicitly
	if flags.substring != "" {
		flags.length = len(flags.substring)
	}
	if fs.Changed("length") {
		if flags.length, err = fs.GetInt("length"); err != nil {
			return nil, fmt.Errorf("failed to parse length flag: %v", err)
		}
	}

	return flags, nil
}

// stringFlag returns a string flag's value, or "" if the flag isn't defined.
func stringFlag(fs *pflag.FlagSet, name string) (string, error) {
	if fs.Lookup(name) == nil {
		return "", nil
	}
	v, err := fs.GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %v", name, err)
	}
	return v, nil
}

// boolFlag returns a bool flag's value, or false if the flag isn't defined.
func boolFlag(fs *pflag.FlagSet, name string) (bool, error) {
	if fs.Lookup(name) == nil {
		return false, nil
	}
	v, err := fs.GetBool(name)
	if err != nil {
		return false, fmt.Errorf("failed to parse %s flag: %v", name, err)
	}
	return v, nil
}

// read reads a FASTA file into a sequence store.
func read(path string) (*seqan.Store, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", path, err)
	}

	s, err := seqan.NewStore(string(dat))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	logger.Debug("parsed fasta", "path", path, "sequences", s.Count())

	return s, nil
}

// resolve finds the identifier a user asked for, by prefix unless exact.
func resolve(s *seqan.Store, flags *Flags) (string, error) {
	if flags.id == "" {
		return "", fmt.Errorf("no sequence identifier passed (--id)")
	}

	if flags.exact {
		if _, err := s.Get(flags.id); err != nil {
			return "", err
		}
		return flags.id, nil
	}

	id, err := s.FindByPrefix(flags.id)
	if err != nil {
		return "", fmt.Errorf("%w. try wrapping the identifier in quotes", err)
	}
	if id != flags.id {
		logger.Debug("resolved identifier prefix", "prefix", flags.id, "id", id)
	}
	return id, nil
}

// locator returns an ORF locator for the start and stop codons in settings.
func locator(conf *config.Config) *seqan.Locator {
	starts, stops := conf.ORF.StartCodons, conf.ORF.StopCodons
	if len(starts) == 0 {
		starts = seqan.StartCodons
	}
	if len(stops) == 0 {
		stops = seqan.StopCodons
	}
	return seqan.NewLocator(starts, stops)
}
