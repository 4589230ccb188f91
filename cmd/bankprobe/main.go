package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bankprobe/internal/bank"
	"bankprobe/internal/config"
	"bankprobe/internal/domain"
	"bankprobe/internal/logging"
	"bankprobe/internal/probe"
	"bankprobe/internal/tui"
)

func main() {
	plain := flag.Bool("plain", false, "line mode instead of the full-screen UI")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.FromEnv()

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	prober := probe.New(cfg.APIBase)
	logger.Info("start", zap.String("api_base", cfg.APIBase), zap.Bool("plain", *plain))

	if *plain {
		client, err := bank.NewClient(cfg.APIBase, cfg.HTTPTimeout)
		if err != nil {
			log.Fatal(err)
		}
		runPlain(prober, client)
		return
	}

	if err := tui.Run(prober, "Digital Bank — API Probe"); err != nil {
		log.Fatal(err)
	}
}

// runPlain is a minimal stdin loop: Enter probes the health endpoint, a few
// commands hit the banking API directly.
func runPlain(prober *probe.Prober, client *bank.Client) {
	var slot probe.Slot
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("bankprobe — Enter to check the API, 'help' for commands, 'q' to quit.")
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		fields := strings.Fields(line)

		if len(fields) == 0 || fields[0] == "probe" {
			task := prober.Trigger(ctx, &slot)
			<-task.Done()
			fmt.Println(slot.Get())
			continue
		}

		switch fields[0] {
		case "q", "quit", "exit":
			return
		case "help":
			fmt.Println("commands: probe | health | balance <acct> | deposit <acct> <amount> | withdraw <acct> <amount> | transfer <from> <to> <amount> | history <acct> [days] | q")
		case "health":
			h, err := client.Health(ctx)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Printf("%s: %s (%d accounts, %d customers)\n", h.BankName, h.Status, h.TotalAccounts, h.TotalCustomers)
		case "balance":
			if len(fields) != 2 {
				fmt.Println("usage: balance <acct>")
				continue
			}
			acct, err := client.Account(ctx, domain.AccountNumber(fields[1]))
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Printf("%s (%s, %s): %.2f\n", acct.AccountNumber, acct.AccountHolder.FullName(), acct.AccountType, acct.Balance)
		case "deposit", "withdraw":
			if len(fields) != 3 {
				fmt.Printf("usage: %s <acct> <amount>\n", fields[0])
				continue
			}
			amount, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				fmt.Println("invalid amount:", fields[2])
				continue
			}
			op := client.Deposit
			if fields[0] == "withdraw" {
				op = client.Withdraw
			}
			balance, err := op(ctx, domain.AccountNumber(fields[1]), amount, "")
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Printf("new balance: %.2f\n", balance)
		case "transfer":
			if len(fields) != 4 {
				fmt.Println("usage: transfer <from> <to> <amount>")
				continue
			}
			amount, err := strconv.ParseFloat(fields[3], 64)
			if err != nil {
				fmt.Println("invalid amount:", fields[3])
				continue
			}
			if err := client.Transfer(ctx, domain.AccountNumber(fields[1]), domain.AccountNumber(fields[2]), amount, ""); err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println("transfer successful")
		case "history":
			if len(fields) < 2 || len(fields) > 3 {
				fmt.Println("usage: history <acct> [days]")
				continue
			}
			days := 30
			if len(fields) == 3 {
				if n, err := strconv.Atoi(fields[2]); err == nil && n > 0 {
					days = n
				}
			}
			txs, err := client.Transactions(ctx, domain.AccountNumber(fields[1]), days)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			if len(txs) == 0 {
				fmt.Println("no transactions")
				continue
			}
			for _, tx := range txs {
				fmt.Printf("%s  %-10s %10.2f  %s\n", tx.Timestamp.Format("2006-01-02 15:04"), tx.Type, tx.Amount, tx.Description)
			}
		default:
			fmt.Println("unknown command; 'help' lists commands")
		}
	}
}
