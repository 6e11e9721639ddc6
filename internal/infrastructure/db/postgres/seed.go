package postgres

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"codeforge/internal/domain/entities"
)

// Seed loads the starter catalog on first boot. A non-empty problems table
// means seeding already happened.
func Seed(db *gorm.DB) error {
	problemRepo := NewProblemRepository(db)
	count, err := problemRepo.Count(context.Background())
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding initial data...")

	for _, problem := range seedProblems() {
		validated, err := entities.NewValidatedProblem(problem)
		if err != nil {
			return err
		}
		if _, err := problemRepo.Create(validated); err != nil {
			return err
		}
	}

	contestRepo := NewContestRepository(db)
	for _, contest := range seedContests() {
		validated, err := entities.NewValidatedContest(contest)
		if err != nil {
			return err
		}
		if _, err := contestRepo.Create(validated); err != nil {
			return err
		}
	}

	discussionRepo := NewDiscussionRepository(db)
	for _, discussion := range seedDiscussions() {
		validated, err := entities.NewValidatedDiscussion(discussion)
		if err != nil {
			return err
		}
		if _, err := discussionRepo.Create(validated); err != nil {
			return err
		}
	}

	log.Println("Initial data seeded successfully")
	return nil
}

func seedProblems() []*entities.Problem {
	twoSum := entities.NewProblem(1, "Two Sum",
		"Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target.",
		entities.DifficultyEasy)
	twoSum.Tags = []string{"Array", "Hash Table"}
	twoSum.Examples = []entities.Example{{
		Input:       "nums = [2,7,11,15], target = 9",
		Output:      "[0,1]",
		Explanation: "Because nums[0] + nums[1] == 9, we return [0, 1].",
	}}
	twoSum.Constraints = []string{
		"2 <= nums.length <= 10^4",
		"-10^9 <= nums[i] <= 10^9",
		"-10^9 <= target <= 10^9",
		"Only one valid answer exists.",
	}
	twoSum.TestCases = []entities.TestCase{
		{Input: "[2,7,11,15]\n9", ExpectedOutput: "[0,1]"},
		{Input: "[3,2,4]\n6", ExpectedOutput: "[1,2]"},
		{Input: "[3,3]\n6", ExpectedOutput: "[0,1]", IsHidden: true},
	}
	twoSum.StarterCode = entities.StarterCode{
		Python:     "class Solution:\n    def twoSum(self, nums: List[int], target: int) -> List[int]:\n        pass",
		JavaScript: "var twoSum = function(nums, target) {\n    \n};",
		Java:       "class Solution {\n    public int[] twoSum(int[] nums, int target) {\n        \n    }\n}",
		Cpp:        "class Solution {\npublic:\n    vector<int> twoSum(vector<int>& nums, int target) {\n        \n    }\n};",
	}
	twoSum.AcceptanceRate = 49.8

	addTwo := entities.NewProblem(2, "Add Two Numbers",
		"You are given two non-empty linked lists representing two non-negative integers. The digits are stored in reverse order, and each of their nodes contains a single digit. Add the two numbers and return the sum as a linked list.",
		entities.DifficultyMedium)
	addTwo.Tags = []string{"Linked List", "Math"}
	addTwo.Examples = []entities.Example{{
		Input:       "l1 = [2,4,3], l2 = [5,6,4]",
		Output:      "[7,0,8]",
		Explanation: "342 + 465 = 807.",
	}}
	addTwo.Constraints = []string{
		"The number of nodes in each linked list is in the range [1, 100].",
		"0 <= Node.val <= 9",
		"It is guaranteed that the list represents a number that does not have leading zeros.",
	}
	addTwo.TestCases = []entities.TestCase{
		{Input: "[2,4,3]\n[5,6,4]", ExpectedOutput: "[7,0,8]"},
	}
	addTwo.StarterCode = entities.StarterCode{
		Python:     "class Solution:\n    def addTwoNumbers(self, l1: Optional[ListNode], l2: Optional[ListNode]) -> Optional[ListNode]:\n        pass",
		JavaScript: "var addTwoNumbers = function(l1, l2) {\n    \n};",
		Java:       "class Solution {\n    public ListNode addTwoNumbers(ListNode l1, ListNode l2) {\n        \n    }\n}",
		Cpp:        "class Solution {\npublic:\n    ListNode* addTwoNumbers(ListNode* l1, ListNode* l2) {\n        \n    }\n};",
	}
	addTwo.AcceptanceRate = 34.2

	return []*entities.Problem{twoSum, addTwo}
}

func seedContests() []*entities.Contest {
	weekly := entities.NewContest("Weekly Contest 420",
		"Test your skills in this weekly programming contest",
		time.Now().Add(-1*time.Hour), 90)

	biweekly := entities.NewContest("Biweekly Contest 145",
		"Biweekly challenge for advanced programmers",
		time.Now().Add(48*time.Hour), 90)

	return []*entities.Contest{weekly, biweekly}
}

func seedDiscussions() []*entities.Discussion {
	system := entities.NewUser("system", "system@codeforge.local", "-")

	first := entities.NewDiscussion("Two Sum - Optimal Solution Discussion",
		"Let's discuss the most optimal approaches to solve the Two Sum problem.",
		system.Id, "system", []string{"Array", "Hash Table"})
	first.RepliesCount = 15
	first.ViewsCount = 342

	second := entities.NewDiscussion("Dynamic Programming Patterns Everyone Should Know",
		"A comprehensive guide to common DP patterns that appear in coding interviews.",
		system.Id, "system", []string{"Dynamic Programming", "Tutorial"})
	second.RepliesCount = 28
	second.ViewsCount = 1205

	return []*entities.Discussion{first, second}
}
