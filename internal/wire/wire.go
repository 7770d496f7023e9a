package wire

import (
	"net/http"

	"cinema-tickets/internal/adaptor"
	"cinema-tickets/internal/data/repository"
	"cinema-tickets/internal/gateway"
	"cinema-tickets/internal/usecase"
	"cinema-tickets/pkg/middleware"
	"cinema-tickets/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring builds the services, handlers and router
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	payments := paymentCharger(repo, config, logger)

	service := usecase.NewService(payments, repo.SeatReservation, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, logger),
	}
}

// paymentCharger picks the payment collaborator from config
func paymentCharger(repo *repository.Repository, config *utils.Config, logger *zap.Logger) usecase.PaymentCharger {
	if config.Payment.Provider == utils.PaymentProviderStripe {
		stripe.Key = config.Payment.StripeKey
		logger.Info("Using Stripe payment provider", zap.String("currency", config.Payment.Currency))
		if config.Payment.StripePaymentMethod == "" {
			logger.Warn("STRIPE_PAYMENT_METHOD is empty, every paid purchase will be refused")
		}
		return gateway.NewStripeCharger(config.Payment.Currency, config.Payment.StripePaymentMethod, logger)
	}

	logger.Info("Using ledger payment provider")
	return repo.Payment
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "The requested resource not found")
	})

	wireTicket(r, handler.Ticket)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
