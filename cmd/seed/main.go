// Herramienta de seed: crea el esquema mínimo y un juego de datos de
// demostración (una farmacia, un usuario, productos con precios, stocks y
// tres años de ventas mensuales estacionales) para probar la API en local.
package main

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/phardev/pharmanalyse-api/internal/infrastructure/postgres"
	"github.com/phardev/pharmanalyse-api/pkg/config"
	"github.com/phardev/pharmanalyse-api/pkg/logger"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS produits (
	id            TEXT PRIMARY KEY,
	code_13_ref   TEXT NOT NULL,
	nom           TEXT NOT NULL,
	famille_id    TEXT NOT NULL DEFAULT '',
	pharmacie_id  TEXT NOT NULL,
	taux_tva      NUMERIC(5,2),
	statut        TEXT NOT NULL DEFAULT 'ACTIVE'
);

CREATE TABLE IF NOT EXISTS prix_achats (
	id             BIGSERIAL PRIMARY KEY,
	produit_id     TEXT NOT NULL REFERENCES produits(id),
	fournisseur_id TEXT NOT NULL,
	prix_achat_ht  NUMERIC(12,4) NOT NULL,
	date_import    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS prix_ventes (
	id              BIGSERIAL PRIMARY KEY,
	produit_id      TEXT NOT NULL REFERENCES produits(id),
	prix_vente_ttc  NUMERIC(12,4) NOT NULL,
	prix_promo      NUMERIC(12,4),
	promo_debut     TIMESTAMPTZ,
	promo_fin       TIMESTAMPTZ,
	date_extraction TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS ventes_mensuelles (
	produit_id TEXT NOT NULL REFERENCES produits(id),
	annee      INT NOT NULL,
	mois       INT NOT NULL,
	quantite   BIGINT NOT NULL,
	PRIMARY KEY (produit_id, annee, mois)
);

CREATE TABLE IF NOT EXISTS stocks (
	id               BIGSERIAL PRIMARY KEY,
	produit_id       TEXT NOT NULL REFERENCES produits(id),
	quantite_rayon   NUMERIC(12,3) NOT NULL DEFAULT 0,
	quantite_reserve NUMERIC(12,3) NOT NULL DEFAULT 0,
	date_extraction  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS utilisateurs (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	nom           TEXT NOT NULL,
	pharmacie_id  TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// demoProduct producto de demostración con su comportamiento de ventas.
type demoProduct struct {
	name      string
	ean13     string
	costHT    float64
	priceTTC  float64
	baseQty   float64 // ventas medias mensuales
	decemberX float64 // multiplicador de diciembre (estacionalidad invernal)
	juneX     float64 // multiplicador de junio (estacionalidad estival)
	shelf     int64
	reserve   int64
}

var demoProducts = []demoProduct{
	{"Doliprane 1g cp 8", "3400935955838", 1.10, 2.18, 320, 1.6, 0.8, 180, 240},
	{"Sirop antitussif 150ml", "3400930087465", 2.40, 5.90, 60, 2.8, 0.3, 40, 30},
	{"Spray nasal eau de mer", "3400938208733", 3.10, 6.50, 85, 1.9, 0.6, 55, 20},
	{"Crème solaire SPF50 200ml", "3400937438086", 6.80, 14.90, 45, 0.1, 3.2, 25, 60},
	{"Antihistaminique cp 7", "3400936403483", 2.90, 6.40, 70, 0.4, 2.1, 35, 15},
	{"Vitamine D3 gouttes", "3400941658570", 3.60, 8.20, 110, 1.3, 0.7, 70, 45},
	{"Pansements assortis x20", "3400933571697", 1.20, 3.10, 95, 1.0, 1.0, 120, 80},
	{"Gel hydroalcoolique 100ml", "3400936970403", 0.90, 2.50, 140, 1.2, 0.9, 90, 200},
	{"Probiotiques gélules x30", "3400952971371", 7.40, 16.80, 38, 1.1, 0.9, 20, 12},
	{"Collyre hydratant 10ml", "3400949497350", 2.70, 6.90, 52, 0.8, 1.4, 30, 18},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "pharmanalyse-seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}
	log.Info().Msg("esquema creado")

	pharmacieID := uuid.New().String()
	if err := seedUser(ctx, pool, pharmacieID); err != nil {
		log.Fatal().Err(err).Msg("seed usuario")
	}
	log.Info().Str("pharmacie_id", pharmacieID).Msg("usuario demo@pharmanalyse.fr creado (password: demo1234)")

	now := time.Now()
	for _, dp := range demoProducts {
		if err := seedProduct(ctx, pool, pharmacieID, dp, now); err != nil {
			log.Fatal().Err(err).Str("produit", dp.name).Msg("seed producto")
		}
	}
	log.Info().Int("produits", len(demoProducts)).Msg("juego de datos de demostración cargado")
}

func seedUser(ctx context.Context, pool *pgxpool.Pool, pharmacieID string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO utilisateurs (id, email, password_hash, nom, pharmacie_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING`,
		uuid.New().String(), "demo@pharmanalyse.fr", string(hash), "Compte démo", pharmacieID,
	)
	return err
}

func seedProduct(ctx context.Context, pool *pgxpool.Pool, pharmacieID string, dp demoProduct, now time.Time) error {
	productID := uuid.New().String()
	vat := decimal.NewFromInt(10)

	_, err := pool.Exec(ctx, `
		INSERT INTO produits (id, code_13_ref, nom, famille_id, pharmacie_id, taux_tva, statut)
		VALUES ($1, $2, $3, $4, $5, $6, 'ACTIVE')`,
		productID, dp.ean13, dp.name, "fam-demo", pharmacieID, vat,
	)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO prix_achats (produit_id, fournisseur_id, prix_achat_ht, date_import)
		VALUES ($1, $2, $3, $4)`,
		productID, "four-demo", decimal.NewFromFloat(dp.costHT), now,
	)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO prix_ventes (produit_id, prix_vente_ttc, date_extraction)
		VALUES ($1, $2, $3)`,
		productID, decimal.NewFromFloat(dp.priceTTC), now,
	)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO stocks (produit_id, quantite_rayon, quantite_reserve, date_extraction)
		VALUES ($1, $2, $3, $4)`,
		productID, decimal.NewFromInt(dp.shelf), decimal.NewFromInt(dp.reserve), now,
	)
	if err != nil {
		return err
	}

	// Tres años de histórico con estacionalidad sinusoidal anclada en los
	// multiplicadores de diciembre y junio, más un ligero crecimiento anual.
	for yearOffset := 2; yearOffset >= 0; yearOffset-- {
		year := now.Year() - yearOffset
		growth := math.Pow(1.05, float64(2-yearOffset))
		for month := 1; month <= 12; month++ {
			if year == now.Year() && month > int(now.Month()) {
				break
			}
			qty := int64(math.Round(dp.baseQty * seasonalFactor(dp, month) * growth))
			if qty < 0 {
				qty = 0
			}
			_, err = pool.Exec(ctx, `
				INSERT INTO ventes_mensuelles (produit_id, annee, mois, quantite)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (produit_id, annee, mois) DO UPDATE SET quantite = EXCLUDED.quantite`,
				productID, year, month, qty,
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// seasonalFactor interpola un perfil anual entre el pico de invierno
// (diciembre) y el de verano (junio) del producto.
func seasonalFactor(dp demoProduct, month int) float64 {
	// fase: 1.0 en diciembre, -1.0 en junio
	phase := math.Cos(2 * math.Pi * float64(month) / 12)
	winter := (dp.decemberX - 1) * math.Max(phase, 0)
	summer := (dp.juneX - 1) * math.Max(-phase, 0)
	return 1 + winter + summer
}
