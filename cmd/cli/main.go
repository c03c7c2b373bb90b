package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
	token   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wallet-cli",
		Short: "Wallet CLI tool",
		Long:  `A command line interface for interacting with the wallet API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the wallet API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("WALLET_TOKEN"), "Bearer token (defaults to WALLET_TOKEN)")

	walletCmd := &cobra.Command{
		Use:   "wallet",
		Short: "Wallet operations",
	}

	balanceCmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the wallet balance",
		Run: func(cmd *cobra.Command, args []string) {
			getBalance()
		},
	}

	fundCmd := &cobra.Command{
		Use:   "fund [amount]",
		Short: "Fund the wallet",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			postAmount("/api/v1/wallet/fund", args[0])
		},
	}

	withdrawCmd := &cobra.Command{
		Use:   "withdraw [amount]",
		Short: "Withdraw from the wallet",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			postAmount("/api/v1/wallet/withdraw", args[0])
		},
	}

	walletCmd.AddCommand(balanceCmd, fundCmd, withdrawCmd)
	rootCmd.AddCommand(walletCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getBalance() {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/v1/wallet/balance", nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	body, status := do(req)

	if status != http.StatusOK {
		fmt.Printf("Balance request FAILED (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Account: %v\n", result["account_number"])
	fmt.Printf("Available balance: %v\n", result["available_balance"])
}

func postAmount(path, amount string) {
	payload, _ := json.Marshal(map[string]string{"amount": amount})
	req, err := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	body, status := do(req)

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	fmt.Printf("Status: %d\n", status)
	fmt.Printf("Message: %v\n", result["message"])
}

func do(req *http.Request) ([]byte, int) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return body, resp.StatusCode
}
