package cli

import (
	"context"
	"fmt"
	"os"

	reqdto "car-rental-api/internal/handler/dto/request"
	"car-rental-api/internal/infra/db"
	"car-rental-api/internal/infra/pg"
	"car-rental-api/internal/infra/readstore"
	"car-rental-api/internal/infra/uow"
	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/jwt"
	"car-rental-api/internal/pkg/password"
	"car-rental-api/internal/usecase/commands"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML layout read by `rentalctl seed`.
type SeedFile struct {
	Users     []SeedUser     `yaml:"users"`
	Merchants []SeedMerchant `yaml:"merchants"`
}

type SeedUser struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Surname  string `yaml:"surname"`
}

type SeedMerchant struct {
	SeedUser    `yaml:",inline"`
	CompanyName string    `yaml:"company_name"`
	Cars        []SeedCar `yaml:"cars"`
}

type SeedCar struct {
	Make  string `yaml:"make"`
	Model string `yaml:"model"`
	Year  int    `yaml:"year"`
	// Kept as text so the price never passes through a float.
	PricePerHour string `yaml:"price_per_hour"`
}

type SeedResult struct {
	Users     int
	Merchants int
	Cars      int
	Skipped   int
}

func ParseSeedFile(data []byte) (*SeedFile, error) {
	var f SeedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errs.Wrap(err, "failed to parse seed file")
	}
	for _, m := range f.Merchants {
		for _, c := range m.Cars {
			if _, err := decimal.NewFromString(c.PricePerHour); err != nil {
				return nil, errs.Wrapf(err, "invalid price_per_hour %q for %s %s", c.PricePerHour, c.Make, c.Model)
			}
		}
	}
	return &f, nil
}

// Seeder registers accounts and cars through the same commands the API uses,
// so every domain rule applies to fixture data too.
type Seeder struct {
	auth commands.AuthCommands
	cars commands.CarCommands
}

func NewSeeder(auth commands.AuthCommands, cars commands.CarCommands) *Seeder {
	return &Seeder{
		auth: auth,
		cars: cars,
	}
}

// Seed skips accounts whose email is already registered, together with their
// cars, so running it twice leaves the database unchanged.
func (s *Seeder) Seed(ctx context.Context, f *SeedFile) (SeedResult, error) {
	var res SeedResult

	for _, u := range f.Users {
		_, created, err := s.register(ctx, u, "user", "")
		if err != nil {
			return res, err
		}
		if !created {
			res.Skipped++
			continue
		}
		res.Users++
	}

	for _, m := range f.Merchants {
		userID, created, err := s.register(ctx, m.SeedUser, "merchant", m.CompanyName)
		if err != nil {
			return res, err
		}
		if !created {
			res.Skipped++
			continue
		}
		res.Merchants++

		for _, c := range m.Cars {
			price, err := decimal.NewFromString(c.PricePerHour)
			if err != nil {
				return res, errs.Wrapf(err, "invalid price_per_hour for %s %s", c.Make, c.Model)
			}
			_, err = s.cars.Create(ctx, userID, reqdto.CreateCarRequest{
				Make:         c.Make,
				Model:        c.Model,
				Year:         c.Year,
				PricePerHour: &price,
			})
			if err != nil {
				return res, errs.Wrapf(err, "failed to create car %s %s for %s", c.Make, c.Model, m.Email)
			}
			res.Cars++
		}
	}

	return res, nil
}

func (s *Seeder) register(ctx context.Context, u SeedUser, role, companyName string) (int64, bool, error) {
	view, err := s.auth.Register(ctx, reqdto.RegisterRequest{
		Email:       u.Email,
		Password:    u.Password,
		Name:        u.Name,
		Surname:     u.Surname,
		Role:        role,
		CompanyName: companyName,
	})
	if err != nil {
		if errs.Is(err, commands.ErrUserAlreadyExists) {
			return 0, false, nil
		}
		return 0, false, errs.Wrapf(err, "failed to register %s", u.Email)
	}
	return view.ID, true, nil
}

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	*RootOptions
	File string
}

func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo users, merchants and cars from a YAML file",
		Long: `Load demo users, merchants and cars from a YAML file.

Accounts that already exist are skipped. Needs the API's full environment
(DB_*, JWT_SECRET, PORT).

Examples:
  rentalctl seed
  rentalctl seed --file ./seeds/demo.yaml -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "seeds/demo.yaml", "seed file")

	return cmd
}

func runSeed(cmd *cobra.Command, opts *SeedOptions) error {
	data, err := os.ReadFile(opts.File)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read seed file", err)
	}
	seedFile, err := ParseSeedFile(data)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid seed file", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	jwtService, err := jwt.NewServiceFromConfig(cfg.JWT)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to connect to database", err)
	}
	defer cleanup()

	q := pg.New()
	unitOfWork := uow.NewPostgresUoW(pool, q)
	seeder := NewSeeder(
		commands.NewAuthCommands(unitOfWork, readstore.NewUserReadStore(q, pool), jwtService, password.NewHasher()),
		commands.NewCarCommands(unitOfWork, clock.NewRealClock()),
	)

	opts.verbosef(cmd, "seeding %d users and %d merchants from %s", len(seedFile.Users), len(seedFile.Merchants), opts.File)

	res, err := seeder.Seed(cmd.Context(), seedFile)
	if err != nil {
		return WrapExitError(ExitFailure, "seed failed", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d users, %d merchants, %d cars (%d existing accounts skipped)\n",
		res.Users, res.Merchants, res.Cars, res.Skipped)
	return nil
}
