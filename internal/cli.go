package internal

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
)

// Run разбирает аргументы командной строки и выполняет одну команду.
// Каждая команда соответствует одному пользовательскому действию на
// платформе и выполняется в собственном контексте с trace_id.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printUsage()
		return errors.New("command is required")
	}

	ctx = a.NewRequestContext(ctx)
	command, rest := args[0], args[1:]

	switch command {
	case "stats":
		return a.runStats(ctx)
	case "listings":
		return a.runListings(ctx, rest)
	case "property":
		return a.runProperty(ctx, rest)
	case "owner":
		return a.runOwner(ctx, rest)
	case "login":
		return a.runLogin(ctx, rest)
	case "register":
		return a.runRegister(ctx, rest)
	case "logout":
		return a.Auth.Logout(ctx)
	case "profile":
		return a.runProfile(ctx)
	case "update-profile":
		return a.runUpdateProfile(ctx, rest)
	case "change-password":
		return a.runChangePassword(ctx, rest)
	case "deactivate":
		return a.Profile.Deactivate(ctx)
	case "slots":
		return a.runSlots(ctx, rest)
	case "book":
		return a.runBook(ctx, rest)
	case "visits":
		return a.runVisits(ctx)
	case "cancel-visit":
		return a.runCancelVisit(ctx, rest)
	case "review":
		return a.runReview(ctx, rest)
	case "publish":
		return a.runPublish(ctx, rest)
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func (a *App) runStats(ctx context.Context) error {
	stats, err := a.Browse.Stats(ctx)
	if err != nil {
		return err
	}
	return printJSON(stats)
}

func (a *App) runListings(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("listings", flag.ContinueOnError)
	var filters domain.ListingFilters
	fs.StringVar(&filters.Search, "search", "", "поиск по описанию или городу")
	fs.StringVar(&filters.Price, "price", "", "диапазон цены")
	fs.BoolVar(&filters.ForSale, "for-sale", false, "только продажа")
	fs.BoolVar(&filters.ForRent, "for-rent", false, "только аренда")
	fs.BoolVar(&filters.TwoPlusRooms, "two-plus-rooms", false, "минимум 2 комнаты")
	if err := fs.Parse(args); err != nil {
		return err
	}

	page, err := a.Browse.Search(ctx, filters)
	if err != nil {
		return err
	}
	if page.Origin == domain.OriginFallback {
		fmt.Fprintln(os.Stderr, "(backend indisponibil, se afișează date demonstrative)")
	}
	return printJSON(page)
}

func (a *App) runProperty(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("property", flag.ContinueOnError)
	id := fs.Int64("id", 0, "id объекта")
	if err := fs.Parse(args); err != nil {
		return err
	}

	view, err := a.Property.Execute(ctx, *id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("Proprietatea nu a fost găsită")
		}
		return err
	}
	return printJSON(view)
}

func (a *App) runOwner(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("owner", flag.ContinueOnError)
	id := fs.Int64("id", 0, "id владельца")
	if err := fs.Parse(args); err != nil {
		return err
	}

	view, err := a.Owner.Execute(ctx, *id)
	if err != nil {
		return err
	}
	return printJSON(view)
}

func (a *App) runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "пароль")
	if err := fs.Parse(args); err != nil {
		return err
	}

	session, err := a.Auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Autentificat ca %s (%s)\n", session.User.Name, session.User.Email)
	return nil
}

func (a *App) runRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "имя")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "пароль")
	role := fs.String("role", domain.ROLE_BUYER, "buyer или owner")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.Auth.Register(ctx, *name, *email, *password, *role)
	if err != nil {
		return err
	}
	fmt.Println(result.Message)
	return nil
}

func (a *App) runProfile(ctx context.Context) error {
	user, err := a.Profile.Get(ctx)
	if err != nil {
		return err
	}
	return printJSON(user)
}

func (a *App) runUpdateProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update-profile", flag.ContinueOnError)
	var update domain.ProfileUpdate
	fs.StringVar(&update.Name, "name", "", "имя")
	fs.StringVar(&update.Phone, "phone", "", "телефон")
	fs.StringVar(&update.DateOfBirth, "dob", "", "дата рождения YYYY-MM-DD")
	fs.StringVar(&update.Description, "description", "", "описание профиля")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.Profile.Update(ctx, update)
	if err != nil {
		return err
	}
	return printJSON(user)
}

func (a *App) runChangePassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("change-password", flag.ContinueOnError)
	current := fs.String("current", "", "текущий пароль")
	next := fs.String("new", "", "новый пароль")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return a.Profile.ChangePassword(ctx, *current, *next)
}

func (a *App) runSlots(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("slots", flag.ContinueOnError)
	propertyID := fs.Int64("property", 0, "id объекта")
	date := fs.String("date", "", "дата YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}

	schedule, err := a.Schedule.Slots(ctx, *propertyID, *date)
	if err != nil {
		return err
	}
	return printJSON(schedule)
}

func (a *App) runBook(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("book", flag.ContinueOnError)
	var req domain.VisitRequest
	fs.Int64Var(&req.PropertyID, "property", 0, "id объекта")
	fs.StringVar(&req.VisitDate, "date", "", "дата YYYY-MM-DD")
	fs.StringVar(&req.VisitTime, "time", "", "время HH:MM")
	fs.StringVar(&req.Notes, "notes", "", "комментарий владельцу")
	if err := fs.Parse(args); err != nil {
		return err
	}

	visit, err := a.Schedule.Book(ctx, req)
	if err != nil {
		return err
	}
	return printJSON(visit)
}

func (a *App) runVisits(ctx context.Context) error {
	visits, err := a.Visits.List(ctx)
	if err != nil {
		return err
	}
	return printJSON(visits)
}

func (a *App) runCancelVisit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cancel-visit", flag.ContinueOnError)
	id := fs.Int64("id", 0, "id визита")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return a.Visits.Cancel(ctx, *id)
}

func (a *App) runReview(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("review", flag.ContinueOnError)
	var draft domain.ReviewDraft
	fs.Int64Var(&draft.OwnerID, "owner", 0, "id владельца")
	fs.Int64Var(&draft.PropertyID, "property", 0, "id объекта")
	fs.Int64Var(&draft.VisitID, "visit", 0, "id визита (опционально)")
	fs.IntVar(&draft.Rating, "rating", 0, "оценка 1-5")
	fs.StringVar(&draft.Comment, "comment", "", "текст отзыва")
	if err := fs.Parse(args); err != nil {
		return err
	}

	review, err := a.Review.Execute(ctx, draft)
	if err != nil {
		return err
	}
	return printJSON(review)
}

func (a *App) runPublish(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("publish", flag.ContinueOnError)
	var draft domain.PropertyDraft
	fs.StringVar(&draft.Title, "title", "", "заголовок")
	fs.StringVar(&draft.Description, "description", "", "описание")
	fs.StringVar(&draft.Address, "address", "", "адрес")
	fs.StringVar(&draft.Location, "location", "", "город")
	fs.Float64Var(&draft.Price, "price", 0, "цена")
	fs.StringVar(&draft.PriceCurrency, "currency", "€", "валюта")
	fs.StringVar(&draft.PricePeriod, "period", "lună", "период оплаты (для аренды)")
	fs.StringVar(&draft.Type, "type", domain.TYPE_RENT, "rent или sale")
	fs.IntVar(&draft.Rooms, "rooms", 0, "число комнат")
	fs.IntVar(&draft.Bathrooms, "bathrooms", 0, "число санузлов")
	fs.Float64Var(&draft.Surface, "surface", 0, "площадь, м²")
	if err := fs.Parse(args); err != nil {
		return err
	}

	created, err := a.Publish.Execute(ctx, draft)
	if err != nil {
		return err
	}
	return printJSON(created)
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: tenansee <command> [flags]

Commands:
  stats                         счетчики платформы
  listings                      поиск объявлений (-search -price -for-sale -for-rent -two-plus-rooms)
  property -id N                страница объекта с отзывами
  owner -id N                   профиль владельца: рейтинг и объекты
  login -email -password        вход
  register -name -email -password [-role]
  logout                        выход
  profile                       текущий профиль
  update-profile                изменить профиль (-name -phone -dob -description)
  change-password -current -new
  deactivate                    деактивировать аккаунт
  slots -property N -date D     свободные интервалы просмотров
  book -property N -date D -time T [-notes]
  visits                        мои визиты
  cancel-visit -id N            отменить визит
  review -owner N -rating R [-property -visit -comment]
  publish                       опубликовать объявление (владелец)`)
}
